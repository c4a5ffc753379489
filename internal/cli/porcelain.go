package cli

import (
	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/git"
	"stackit.dev/gitkit/internal/output"
)

func newBranchCmd(env *Env) *cobra.Command {
	var (
		del   bool
		force bool
	)
	cmd := &cobra.Command{
		Use:   "branch <name> [start]",
		Short: "Create or delete a branch without checking it out",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if del || force {
				if err := env.Repo.DeleteBranch(cmd.Context(), name, force); err != nil {
					return err
				}
				env.Splog.Info("Deleted branch %s", output.ColorCyan(name))
				return nil
			}

			start := ""
			if len(args) > 1 {
				start = args[1]
			}
			if err := env.Repo.CreateBranch(cmd.Context(), name, start); err != nil {
				return err
			}
			env.Splog.Info("Created branch %s", output.ColorCyan(name))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&del, "delete", "d", false, "Delete a merged branch")
	cmd.Flags().BoolVarP(&force, "force-delete", "D", false, "Delete a branch even when unmerged")
	return cmd
}

func newPushCmd(env *Env) *cobra.Command {
	var opts git.PushOptions
	cmd := &cobra.Command{
		Use:   "push <remote> [refspec]",
		Short: "Push a refspec to a remote",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			refspec := ""
			if len(args) > 1 {
				refspec = args[1]
			}
			if err := env.Repo.Push(cmd.Context(), args[0], refspec, opts); err != nil {
				return err
			}
			env.Splog.Info("Pushed to %s", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Force the update")
	cmd.Flags().BoolVar(&opts.ForceWithLease, "force-with-lease", false, "Force only if the remote ref is where we last saw it")
	cmd.Flags().BoolVarP(&opts.SetUpstream, "set-upstream", "u", false, "Record the remote as upstream")
	return cmd
}

func newPullCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "pull [remote] [branch]",
		Short: "Fetch and integrate a remote branch",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var remote, branch string
			if len(args) > 0 {
				remote = args[0]
			}
			if len(args) > 1 {
				branch = args[1]
			}
			if err := env.Repo.Pull(cmd.Context(), remote, branch); err != nil {
				return err
			}
			env.Splog.Info("Pulled")
			return nil
		},
	}
}

func newUpdateRefCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "update-ref <ref> <id>",
		Short: "Point a ref at an object id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.Repo.UpdateRef(cmd.Context(), args[0], args[1])
		},
	}
}
