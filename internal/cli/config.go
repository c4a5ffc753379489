package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"stackit.dev/gitkit/internal/config"
)

// newConfigCmd creates the config command
func newConfigCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize gitkit configuration",
		Long: `Show or initialize gitkit configuration.

Configuration is read from .gitkit.yaml (or .gitkit.toml) in the repository
root, or from the file named by $GITKIT_CONFIG, then overridden by GITKIT_* environment variables
and finally by command-line flags.

Examples:
  gitkit config show
  gitkit config init`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := yaml.Marshal(env.Config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			env.Splog.Print("%s", data)
			return nil
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .gitkit.yaml to the repository root",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := filepath.Join(env.Root, config.FileName)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			env.Splog.Info("Wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)

	return cmd
}
