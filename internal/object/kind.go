package object

import (
	"strings"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

// ObjectKind identifies the type of a git object.
type ObjectKind string

const (
	KindBlob   ObjectKind = "blob"
	KindTree   ObjectKind = "tree"
	KindCommit ObjectKind = "commit"
	KindTag    ObjectKind = "tag"
)

// Kinds lists every valid ObjectKind.
var Kinds = []ObjectKind{KindBlob, KindTree, KindCommit, KindTag}

// ParseKind normalizes a caller-supplied kind token. Case and surrounding
// whitespace are ignored and a leading ':' symbol marker is accepted, so
// "Blob", " tree" and ":commit" all classify. Anything outside the four
// kinds is a validation error.
func ParseKind(s string) (ObjectKind, error) {
	token := strings.ToLower(strings.TrimSpace(s))
	token = strings.TrimPrefix(token, ":")
	switch kind := ObjectKind(token); kind {
	case KindBlob, KindTree, KindCommit, KindTag:
		return kind, nil
	}
	return "", gkerrors.NewValidationError("invalid object type", s)
}

// Valid reports whether k is one of the four canonical kinds.
func (k ObjectKind) Valid() bool {
	switch k {
	case KindBlob, KindTree, KindCommit, KindTag:
		return true
	}
	return false
}

func (k ObjectKind) String() string {
	return string(k)
}

// DefaultMode returns the mode used when an entry leaves Mode empty.
func DefaultMode(k ObjectKind) string {
	if k == KindBlob {
		return ModeFile
	}
	return ModeDir
}
