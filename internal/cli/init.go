package cli

import (
	"github.com/spf13/cobra"
)

func newInitCmd(env *Env) *cobra.Command {
	var (
		bare          bool
		initialBranch string
	)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty repository in the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := env.Repo.Init(cmd.Context(), bare, initialBranch); err != nil {
				return err
			}
			env.Splog.Info("Initialized repository")
			return nil
		},
	}
	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository")
	cmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", "Name of the initial branch")
	return cmd
}
