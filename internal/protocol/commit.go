package protocol

import (
	"strings"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/object"
)

// Commit is the decoded body of a commit object.
type Commit struct {
	Tree      string
	Parents   []string
	Author    string
	Committer string
	Message   string
}

// ParseCommitTree extracts the tree id from the first line of a commit body,
// which must read "tree <id>".
func ParseCommitTree(body string) (string, error) {
	first, _, _ := strings.Cut(body, "\n")
	key, id, ok := strings.Cut(first, " ")
	if !ok || key != "tree" {
		return "", gkerrors.NewValidationError("malformed commit header", first)
	}
	return object.ValidateID(id)
}

// ParseCommit decodes the headers of a commit body and the message that
// follows the first blank line. Unknown headers (encoding, gpgsig and its
// continuation lines) are skipped.
func ParseCommit(body string) (Commit, error) {
	tree, err := ParseCommitTree(body)
	if err != nil {
		return Commit{}, err
	}
	c := Commit{Tree: tree}

	header, message, _ := strings.Cut(body, "\n\n")
	c.Message = strings.TrimSuffix(message, "\n")

	for _, line := range strings.Split(header, "\n")[1:] {
		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "parent":
			id, err := object.ValidateID(value)
			if err != nil {
				return Commit{}, err
			}
			c.Parents = append(c.Parents, id)
		case "author":
			c.Author = value
		case "committer":
			c.Committer = value
		}
	}
	return c, nil
}
