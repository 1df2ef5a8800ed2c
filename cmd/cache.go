package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spiffcs/ghfind/config"
	"github.com/spiffcs/ghfind/internal/mapping"
	"github.com/spiffcs/ghfind/internal/output"
	"github.com/spiffcs/ghfind/internal/store"
)

// NewCmdCache creates the cache command with subcommands.
func NewCmdCache(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the local user cache",
		Long: `The cache holds every user returned by past searches. It is written
opportunistically and never consulted by the search path, so these
commands are the only way to read it.`,
	}

	cmd.AddCommand(newCmdCacheStats())
	cmd.AddCommand(newCmdCacheClear())
	cmd.AddCommand(newCmdCacheList(opts))
	cmd.AddCommand(newCmdCacheGet(opts))

	return cmd
}

// newCmdCacheStats creates the cache stats subcommand.
func newCmdCacheStats() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE:  runCacheStats,
	}
}

// newCmdCacheClear creates the cache clear subcommand.
func newCmdCacheClear() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached users",
		RunE:  runCacheClear,
	}
}

// newCmdCacheList creates the cache list subcommand.
func newCmdCacheList(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all cached users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")

	return cmd
}

// newCmdCacheGet creates the cache get subcommand.
func newCmdCacheGet(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one cached user by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheGet(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")

	return cmd
}

// openCacheStore opens the cache from config without requiring a token.
func openCacheStore() (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return st, cfg, nil
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	st, cfg, err := openCacheStore()
	if err != nil {
		return err
	}
	defer st.Close()

	count, err := st.Count(cmd.Context())
	if err != nil {
		return err
	}

	path := cfg.DatabasePath
	if path == "" {
		path = store.DefaultPath()
	}

	fmt.Printf("Cache statistics:\n")
	fmt.Printf("  Location: %s\n", path)
	fmt.Printf("  Users:    %d\n", count)
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	st, _, err := openCacheStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(cmd.Context()); err != nil {
		return err
	}

	fmt.Println("Cache cleared.")
	return nil
}

func runCacheList(cmd *cobra.Command, opts *Options) error {
	st, cfg, err := openCacheStore()
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.All(cmd.Context())
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cfg.DefaultFormat
	}
	formatter := output.NewFormatter(output.Format(format))
	return formatter.FormatUsers(mapping.RecordUsers(records), os.Stdout)
}

func runCacheGet(cmd *cobra.Command, arg string, opts *Options) error {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user ID %q: %w", arg, err)
	}

	st, cfg, err := openCacheStore()
	if err != nil {
		return err
	}
	defer st.Close()

	record, err := st.ByID(cmd.Context(), id)
	if err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = cfg.DefaultFormat
	}
	formatter := output.NewFormatter(output.Format(format))
	return formatter.FormatUser(mapping.RecordUser(record), os.Stdout)
}
