package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// NonInteractiveEnv disables prompts when set to any value.
const NonInteractiveEnv = "GITKIT_NON_INTERACTIVE"

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if both stdin and stdout are terminals
func IsTTY() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

// Interactive reports whether prompts may be shown.
func Interactive() bool {
	if _, ok := os.LookupEnv(NonInteractiveEnv); ok {
		return false
	}
	return IsTTY()
}
