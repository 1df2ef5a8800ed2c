package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spiffcs/ghfind/internal/model"
	"github.com/spiffcs/ghfind/internal/output"
)

// NewCmdUser creates the user command.
func NewCmdUser(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user <login>",
		Short: "Show a GitHub user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUser(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "output", "o", "", "Output format (table, json)")

	return cmd
}

func runUser(cmd *cobra.Command, login string, opts *Options) error {
	ctx := cmd.Context()
	rt, err := newRuntime(ctx, opts)
	if err != nil {
		return err
	}
	defer rt.close()

	user, err := model.Await(rt.getUserDetails.Execute(ctx, login))
	if err != nil {
		return err
	}

	formatter := output.NewFormatter(output.Format(rt.format(opts)))
	return formatter.FormatUser(user, os.Stdout)
}
