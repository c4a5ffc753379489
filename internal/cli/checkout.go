package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/output"
)

// Replaced in tests.
var (
	interactive    = output.Interactive
	branchSelector = promptBranch
)

func promptBranch(branches []string, current string) (string, error) {
	var selected string
	prompt := &survey.Select{
		Message: "Checkout a branch:",
		Options: branches,
	}
	if current != "" {
		prompt.Default = current
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:               "checkout [branch]",
		Aliases:           []string{"co"},
		Short:             "Switch to a branch. If no branch is provided, opens an interactive selector.",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeBranches,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target := ""
			if len(args) > 0 {
				target = args[0]
			} else {
				selected, err := selectBranch(ctx, env)
				if err != nil {
					return err
				}
				target = selected
			}

			if err := env.Repo.Checkout(ctx, target); err != nil {
				return err
			}
			env.Splog.Info("Checked out %s", output.ColorCyan(target))
			return nil
		},
	}
}

func selectBranch(ctx context.Context, env *Env) (string, error) {
	if !interactive() {
		return "", errors.New("no branch given and not running interactively")
	}
	names, err := env.Repo.BranchNames(ctx)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no branches to check out")
	}
	current, _ := env.Repo.CurrentBranch(ctx)
	return branchSelector(names, current)
}
