package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spiffcs/ghfind/internal/tui"
)

// New creates the root command with all subcommands registered.
func New() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "ghfind",
		Short: "GitHub user search",
		Long: `An interactive GitHub user finder. Type to search, pick a user to
see their profile. Results are cached locally for offline inspection.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, opts)
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	// Register subcommands
	rootCmd.AddCommand(NewCmdSearch(opts))
	rootCmd.AddCommand(NewCmdUser(opts))
	rootCmd.AddCommand(NewCmdCache(opts))
	rootCmd.AddCommand(NewCmdConfig())
	rootCmd.AddCommand(NewCmdVersion())

	return rootCmd
}

// runRoot launches the interactive UI.
func runRoot(cmd *cobra.Command, opts *Options) error {
	if !tui.ShouldUseTUI() {
		return fmt.Errorf("interactive mode needs a terminal. Use 'ghfind search <query>' instead")
	}

	ctx := cmd.Context()
	rt, err := newRuntime(ctx, opts)
	if err != nil {
		return err
	}
	defer rt.close()

	vm := tui.NewViewModel(rt.searchUsers, rt.getUserDetails)
	return tui.Run(ctx, vm)
}
