package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/object"
	"stackit.dev/gitkit/internal/output"
)

func newLsTreeCmd(env *Env) *cobra.Command {
	var (
		asTree bool
		opts   output.TreeRenderOptions
	)
	cmd := &cobra.Command{
		Use:   "ls-tree <tree-ish>",
		Short: "List the entries of one tree level",
		Long: `List the entries of one tree level in ls-tree row format.

With --tree, subtrees are walked and drawn as an indented hierarchy
instead. That form is for reading, not for piping into mktree.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			entries, err := env.Repo.LsTree(ctx, args[0])
			if err != nil {
				return err
			}
			if !asTree {
				for _, e := range entries {
					env.Splog.Print("%s\n", output.EntryRow(e))
				}
				return nil
			}

			renderer := output.NewTreeRenderer(func(e object.TreeEntry) ([]object.TreeEntry, error) {
				return env.Repo.LsTree(ctx, e.ID)
			})
			lines, err := renderer.Render(entries, opts)
			if err != nil {
				return err
			}
			env.Splog.Print("%s\n", args[0])
			for _, line := range lines {
				env.Splog.Print("%s\n", line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asTree, "tree", false, "Draw subtrees as a hierarchy")
	cmd.Flags().IntVar(&opts.MaxDepth, "depth", 0, "With --tree, stop after this many levels (0 for all)")
	cmd.Flags().BoolVar(&opts.ShowIDs, "ids", false, "With --tree, show abbreviated object ids")
	return cmd
}

func newMkTreeCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "mktree",
		Short: "Build a tree object from ls-tree rows read on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := readEntries(cmd)
			if err != nil {
				return err
			}
			id, err := env.Repo.MkTree(cmd.Context(), entries)
			if err != nil {
				return err
			}
			env.Splog.Print("%s\n", id)
			return nil
		},
	}
}

func newAddToTreeCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "add-to-tree [tree-ish]",
		Short: "Overlay ls-tree rows read on stdin onto an existing tree",
		Long: `Overlay ls-tree rows read on stdin onto an existing tree and print the
new tree id. Entries whose names match a row replace it; the replaced
entries are written after the untouched ones. Without a tree-ish the
rows are written into an empty tree.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readEntries(cmd)
			if err != nil {
				return err
			}
			base := ""
			if len(args) > 0 {
				base = args[0]
			}
			id, err := env.Repo.AddToTree(cmd.Context(), base, entries)
			if err != nil {
				return err
			}
			env.Splog.Print("%s\n", id)
			return nil
		},
	}
}

func readEntries(cmd *cobra.Command) ([]object.TreeEntry, error) {
	input, err := readInput(cmd)
	if err != nil {
		return nil, err
	}
	return object.ParseTree(input)
}

func newHashObjectCmd(env *Env) *cobra.Command {
	var (
		kind  string
		write bool
	)
	cmd := &cobra.Command{
		Use:   "hash-object",
		Short: "Compute the object id of stdin, optionally writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			k, err := object.ParseKind(kind)
			if err != nil {
				return err
			}
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			id, err := env.Repo.HashObject(cmd.Context(), k, input, write)
			if err != nil {
				return err
			}
			env.Splog.Print("%s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "type", "t", string(object.KindBlob), "Object type")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the object into the object database")
	return cmd
}

func newCatFileCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "cat-file <type> <object>",
		Short: "Print the raw content of an object",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := object.ParseKind(args[0])
			if err != nil {
				return err
			}
			content, err := env.Repo.CatFile(cmd.Context(), k, args[1])
			if err != nil {
				return err
			}
			env.Splog.Print("%s", content)
			return nil
		},
	}
}

func newCommitTreeCmd(env *Env) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "commit-tree <commit>",
		Short: "Print the tree a commit points at",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				id, err := env.Repo.CommitTree(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				env.Splog.Print("%s\n", id)
				return nil
			}

			c, err := env.Repo.ReadCommit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			env.Splog.Print("tree %s\n", c.Tree)
			for _, p := range c.Parents {
				env.Splog.Print("parent %s\n", p)
			}
			env.Splog.Print("author %s\ncommitter %s\n\n%s\n", c.Author, c.Committer, c.Message)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the decoded commit headers and message")
	return cmd
}

func newNewCommitCmd(env *Env) *cobra.Command {
	var (
		message string
		parents []string
	)
	cmd := &cobra.Command{
		Use:   "new-commit <tree>",
		Short: "Write a commit object for a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" {
				return fmt.Errorf("a commit message is required (-m)")
			}
			id, err := env.Repo.NewCommit(cmd.Context(), args[0], message, parents...)
			if err != nil {
				return err
			}
			env.Splog.Print("%s\n", id)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")
	cmd.Flags().StringArrayVarP(&parents, "parent", "p", nil, "Parent commit (repeatable)")
	return cmd
}
