package cli

import (
	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/output"
)

func newMergeCmd(env *Env) *cobra.Command {
	var noFastForward bool
	cmd := &cobra.Command{
		Use:               "merge <rev>",
		Short:             "Merge a revision into the current branch",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.Repo.Merge(cmd.Context(), args[0], noFastForward); err != nil {
				return err
			}
			env.Splog.Info("Merged %s", output.ColorCyan(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noFastForward, "no-ff", false, "Always create a merge commit")
	return cmd
}

func newRebaseCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:               "rebase <upstream>",
		Short:             "Rebase the current branch onto upstream",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := env.Repo.Rebase(cmd.Context(), args[0]); err != nil {
				return err
			}
			env.Splog.Info("Rebased onto %s", output.ColorCyan(args[0]))
			return nil
		},
	}
}
