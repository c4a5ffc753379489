package protocol

import (
	"strings"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

var failurePrefixes = []string{"fatal:", "error:"}

// FailureLine returns the first line of output that starts with "fatal:" or
// "error:".
func FailureLine(output string) (string, bool) {
	for _, line := range Lines(output) {
		for _, prefix := range failurePrefixes {
			if strings.HasPrefix(line, prefix) {
				return line, true
			}
		}
	}
	return "", false
}

// CheckFailure turns a fatal:/error: diagnostic in stderr into an
// ExternalToolError whose message is that line verbatim. It returns nil
// when stderr carries no diagnostic.
func CheckFailure(command string, args []string, stderr string) error {
	line, ok := FailureLine(stderr)
	if !ok {
		return nil
	}
	err := gkerrors.NewExternalToolError(command, args, "", stderr, nil)
	err.Message = line
	return err
}
