package cli

import (
	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/git"
)

// completeBranches is a helper for cobra.ValidArgsFunction that returns all
// branch names in the repository. It only completes the first argument.
func completeBranches(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	cfg := git.Config{}
	if dir, err := cmd.Flags().GetString("dir"); err == nil {
		cfg.WorkDir = dir
	}
	branches, err := git.Open(cfg, nil).BranchNames(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return branches, cobra.ShellCompDirectiveNoFileComp
}
