package cli

import (
	"sort"

	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/output"
	"stackit.dev/gitkit/internal/protocol"
)

func newShowRefCmd(env *Env) *cobra.Command {
	var heads bool
	cmd := &cobra.Command{
		Use:   "show-ref [pattern...]",
		Short: "List refs and the objects they point at",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				refs protocol.RefMapping
				err  error
			)
			if heads {
				refs, err = env.Repo.Heads(cmd.Context())
			} else {
				refs, err = env.Repo.ShowRefs(cmd.Context(), args...)
			}
			if err != nil {
				return err
			}
			printRefs(env, refs)
			return nil
		},
	}
	cmd.Flags().BoolVar(&heads, "heads", false, "Only local branches, by short name")
	return cmd
}

func printRefs(env *Env, refs map[string]string) {
	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		env.Splog.Print("%s\n", output.RefRow(name, refs[name]))
	}
}

func newRevParseCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "rev-parse <rev>...",
		Short: "Resolve revisions to full object ids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := env.Repo.BatchRevParse(cmd.Context(), args)
			if err != nil {
				return err
			}
			for _, rev := range args {
				env.Splog.Print("%s\n", ids[rev])
			}
			return nil
		},
	}
}

func newBranchesCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "branches",
		Short: "List local branches, marking the current one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			branches, err := env.Repo.Branches(cmd.Context())
			if err != nil {
				return err
			}
			for _, b := range branches {
				env.Splog.Print("%s\n", output.BranchRow(b))
			}
			return nil
		},
	}
}
