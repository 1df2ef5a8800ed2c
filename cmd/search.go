package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/spiffcs/ghfind/internal/log"
	"github.com/spiffcs/ghfind/internal/model"
	"github.com/spiffcs/ghfind/internal/output"
)

// NewCmdSearch creates the search command.
func NewCmdSearch(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search GitHub users and print the results",
		Long: `Searches GitHub users by login or name and prints the matches.
This is the non-interactive counterpart of running ghfind without arguments.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "l", 0, "Maximum number of results (0 = all)")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 10, "Concurrent profile fetches with --details")
	cmd.Flags().BoolVarP(&opts.Details, "details", "d", false, "Fetch each user's full profile")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, opts *Options) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx, opts)
	if err != nil {
		return err
	}
	defer rt.close()

	users, err := model.Await(rt.searchUsers.Execute(ctx, query))
	if err != nil {
		return err
	}

	if opts.Limit > 0 && len(users) > opts.Limit {
		users = users[:opts.Limit]
	}

	if opts.Details {
		if err := enrichUsers(ctx, rt, users, opts.Workers); err != nil {
			return err
		}
	}

	formatter := output.NewFormatter(output.Format(rt.format(opts)))
	return formatter.FormatUsers(users, os.Stdout)
}

// enrichUsers replaces each search hit with its full profile, fetched
// concurrently with a bounded number of workers. A profile that cannot be
// fetched leaves the original search hit in place.
func enrichUsers(ctx context.Context, rt *runtime, users []model.User, workers int) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range users {
		i := i
		g.Go(func() error {
			detailed, err := model.Await(rt.getUserDetails.Execute(ctx, users[i].Login))
			if err != nil {
				log.Warn("could not fetch profile", "login", users[i].Login, "error", err)
				return nil
			}
			users[i] = detailed
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch profiles: %w", err)
	}
	return nil
}
