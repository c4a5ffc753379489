package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/config"
	"stackit.dev/gitkit/internal/git"
	"stackit.dev/gitkit/internal/output"
)

// Env is the per-invocation state shared by every subcommand. It is filled
// in by the root command's PersistentPreRunE.
type Env struct {
	// Root is the repository root, or the working directory outside one.
	Root   string
	Config *config.Config
	Splog  *output.Splog
	Repo   *git.Repository
}

type rootFlags struct {
	dir     string
	gitPath string
	timeout time.Duration
	debug   bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	env := &Env{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "gitkit",
		Short: "gitkit is a typed front end for git's object model and porcelain",
		Long: `gitkit is a typed front end for git's object model and porcelain.

Plumbing commands read and write tree rows in ls-tree format
(MODE SP KIND SP ID TAB NAME), so their output can be piped back in.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return env.setup(cmd, flags)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if env.Splog != nil {
				return env.Splog.Close()
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "Run as if gitkit was started in this directory")
	rootCmd.PersistentFlags().StringVar(&flags.gitPath, "git", "", "Path to the git executable")
	rootCmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Timeout for each git invocation")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Print every git invocation")

	// Plumbing
	rootCmd.AddCommand(newLsTreeCmd(env))
	rootCmd.AddCommand(newMkTreeCmd(env))
	rootCmd.AddCommand(newAddToTreeCmd(env))
	rootCmd.AddCommand(newHashObjectCmd(env))
	rootCmd.AddCommand(newCatFileCmd(env))
	rootCmd.AddCommand(newCommitTreeCmd(env))
	rootCmd.AddCommand(newNewCommitCmd(env))
	rootCmd.AddCommand(newShowRefCmd(env))
	rootCmd.AddCommand(newRevParseCmd(env))
	rootCmd.AddCommand(newBranchesCmd(env))
	rootCmd.AddCommand(newValidateCmd(env))
	rootCmd.AddCommand(newClassifyCmd(env))

	// Porcelain
	rootCmd.AddCommand(newInitCmd(env))
	rootCmd.AddCommand(newCheckoutCmd(env))
	rootCmd.AddCommand(newBranchCmd(env))
	rootCmd.AddCommand(newMergeCmd(env))
	rootCmd.AddCommand(newPushCmd(env))
	rootCmd.AddCommand(newPullCmd(env))
	rootCmd.AddCommand(newRebaseCmd(env))
	rootCmd.AddCommand(newUpdateRefCmd(env))

	rootCmd.AddCommand(newConfigCmd(env))

	return rootCmd
}

// setup resolves configuration (file, then environment, then flags) and
// builds the logger and repository for this invocation.
func (e *Env) setup(cmd *cobra.Command, flags *rootFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dir := flags.dir
	if dir == "" {
		dir = "."
	}
	root, err := git.Open(git.Config{WorkDir: dir}, nil).Root()
	if err != nil {
		// Not inside a repository yet (init); read config next to dir.
		root = dir
	}

	cfg, err := config.Load(ctx, root)
	if err != nil {
		return err
	}
	if flags.dir != "" {
		cfg.WorkDir = flags.dir
	}
	if flags.gitPath != "" {
		cfg.GitPath = flags.gitPath
	}
	if flags.timeout > 0 {
		cfg.Timeout = flags.timeout
	}

	output.ConfigureColor(cmd.OutOrStdout())
	splog, err := output.NewSplogWithConfig(cmd.OutOrStdout(), cmd.ErrOrStderr(),
		flags.debug || os.Getenv("DEBUG") != "",
		output.FileOptions{
			Path:       cfg.Log.File,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
		})
	if err != nil {
		return err
	}

	e.Root = root
	e.Config = cfg
	e.Splog = splog
	e.Repo = git.Open(cfg.GitConfig(), splog.Logger())
	splog.Debug("config root=%s workdir=%s git=%s", root, cfg.WorkDir, cfg.GitPath)
	return nil
}

func readInput(cmd *cobra.Command) (string, error) {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
