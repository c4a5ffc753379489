package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"stackit.dev/gitkit/internal/object"
	"stackit.dev/gitkit/internal/output"
)

func newValidateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check that each argument is a full lowercase object id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			invalid := 0
			for _, id := range args {
				if _, err := object.ValidateID(id); err != nil {
					env.Splog.Print("%s %s\n", output.ColorRed("invalid"), id)
					invalid++
					continue
				}
				env.Splog.Print("%s %s\n", output.ColorGreen("ok"), id)
			}
			if invalid > 0 {
				return fmt.Errorf("%d of %d ids are invalid", invalid, len(args))
			}
			return nil
		},
	}
}

func newClassifyCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <kind>",
		Short: "Normalize an object kind and print its default tree mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			kind, err := object.ParseKind(args[0])
			if err != nil {
				return err
			}
			env.Splog.Print("%s %s\n", kind, object.DefaultMode(kind))
			return nil
		},
	}
}
