package protocol

import (
	"strings"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

// Lines splits raw command output into records. Trailing process framing
// (the final newline and any CR before LF) is stripped and blank lines are
// dropped.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Records splits text on an arbitrary terminator, as produced by -z style
// output. Empty records are dropped.
func Records(text string, terminator string) []string {
	if text == "" {
		return nil
	}
	var records []string
	for _, r := range strings.Split(text, terminator) {
		if r != "" {
			records = append(records, r)
		}
	}
	return records
}

// Fields splits a row into exactly n fields at sep; the last field keeps the
// remainder of the row. A row with fewer than n fields is rejected.
func Fields(line, sep string, n int) ([]string, error) {
	fields := strings.SplitN(line, sep, n)
	if len(fields) != n {
		return nil, gkerrors.NewValidationError("malformed record", line)
	}
	return fields, nil
}
