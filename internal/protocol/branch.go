package protocol

import (
	"strings"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

// Branch is one row of a `git branch` listing.
type Branch struct {
	Name string
	// Current marks the checked-out branch ("* " prefix).
	Current bool
	// Worktree marks a branch checked out in another worktree ("+ " prefix).
	Worktree bool
	// Detached is set for the "(HEAD detached at ...)" row; Name is empty.
	Detached bool
}

const branchPrefixLen = 2

// ParseBranchList decodes `git branch` output. Every row carries a
// two-character prefix: "* " for the current branch, "+ " for a branch held
// by another worktree, and two spaces otherwise.
func ParseBranchList(text string) ([]Branch, error) {
	var branches []Branch
	for _, line := range Lines(text) {
		if len(line) <= branchPrefixLen {
			return nil, gkerrors.NewValidationError("malformed branch row", line)
		}
		prefix, name := line[:branchPrefixLen], line[branchPrefixLen:]

		var b Branch
		switch prefix {
		case "* ":
			b.Current = true
		case "+ ":
			b.Worktree = true
		case "  ":
		default:
			return nil, gkerrors.NewValidationError("malformed branch row", line)
		}

		if strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")") {
			b.Detached = true
		} else {
			b.Name = name
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// CurrentBranch returns the name of the checked-out branch, or "" when HEAD
// is detached or the listing is empty.
func CurrentBranch(branches []Branch) string {
	for _, b := range branches {
		if b.Current {
			return b.Name
		}
	}
	return ""
}
