package git

import (
	"context"
	"fmt"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/object"
	"stackit.dev/gitkit/internal/protocol"
)

// LsTree returns the entries of a single tree level. The listing is read
// NUL-terminated so names arrive unquoted.
func (r *Repository) LsTree(ctx context.Context, treeish string) ([]object.TreeEntry, error) {
	output, err := r.exec.RunRaw(ctx, "ls-tree", "-z", treeish)
	if err != nil {
		return nil, asNotFound(err, "tree", treeish, markerBadObject, markerNotTree)
	}
	records := protocol.Records(output, "\x00")
	entries := make([]object.TreeEntry, 0, len(records))
	for _, rec := range records {
		e, err := object.ParseRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ls-tree %s: %w", treeish, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// MkTree writes a tree object from entries and returns its id. The encoded
// records are fed to mktree -z exactly as object.FormatRecords produces them,
// so mktree never unquotes a name.
func (r *Repository) MkTree(ctx context.Context, entries []object.TreeEntry) (string, error) {
	payload, err := object.FormatRecords(entries)
	if err != nil {
		return "", err
	}
	id, err := r.exec.RunWithInput(ctx, payload, "mktree", "-z")
	if err != nil {
		return "", fmt.Errorf("failed to write tree: %w", err)
	}
	return object.ValidateID(id)
}

// AddToTree builds a new tree from treeish with entries overlaid by
// object.MergeTree. An empty treeish starts from an empty tree.
func (r *Repository) AddToTree(ctx context.Context, treeish string, entries []object.TreeEntry) (string, error) {
	var base []object.TreeEntry
	if treeish != "" {
		var err error
		base, err = r.LsTree(ctx, treeish)
		if err != nil {
			return "", err
		}
	}
	return r.MkTree(ctx, object.MergeTree(base, entries))
}

// HashObject computes the id of content as an object of the given kind and
// writes it to the object database when write is set.
func (r *Repository) HashObject(ctx context.Context, kind object.ObjectKind, content string, write bool) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("failed to hash object: %w", invalidKind(kind))
	}
	args := []string{"hash-object", "-t", kind.String()}
	if write {
		args = append(args, "-w")
	}
	args = append(args, "--stdin")
	id, err := r.exec.RunWithInput(ctx, content, args...)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", kind, err)
	}
	return object.ValidateID(id)
}

// CatFile returns the raw content of an object of the expected kind.
func (r *Repository) CatFile(ctx context.Context, kind object.ObjectKind, rev string) (string, error) {
	if !kind.Valid() {
		return "", invalidKind(kind)
	}
	output, err := r.exec.RunRaw(ctx, "cat-file", kind.String(), rev)
	if err != nil {
		return "", asNotFound(err, kind.String(), rev, markerBadObject)
	}
	return output, nil
}

// ObjectKind reports the kind of the object rev names.
func (r *Repository) ObjectKind(ctx context.Context, rev string) (object.ObjectKind, error) {
	output, err := r.exec.Run(ctx, "cat-file", "-t", rev)
	if err != nil {
		return "", asNotFound(err, "object", rev, markerBadObject)
	}
	return object.ParseKind(output)
}

// CommitTree returns the id of the tree a commit points at, read from the
// first line of its body.
func (r *Repository) CommitTree(ctx context.Context, commit string) (string, error) {
	body, err := r.CatFile(ctx, object.KindCommit, commit)
	if err != nil {
		return "", err
	}
	return protocol.ParseCommitTree(body)
}

// ReadCommit decodes the headers and message of a commit.
func (r *Repository) ReadCommit(ctx context.Context, commit string) (protocol.Commit, error) {
	body, err := r.CatFile(ctx, object.KindCommit, commit)
	if err != nil {
		return protocol.Commit{}, err
	}
	return protocol.ParseCommit(body)
}

// NewCommit writes a commit object for tree with the given parents.
func (r *Repository) NewCommit(ctx context.Context, tree, message string, parents ...string) (string, error) {
	if _, err := object.ValidateID(tree); err != nil {
		return "", err
	}
	args := []string{"commit-tree", tree}
	for _, p := range parents {
		args = append(args, "-p", p)
	}
	id, err := r.exec.RunWithInput(ctx, message, args...)
	if err != nil {
		return "", fmt.Errorf("failed to create commit: %w", err)
	}
	return object.ValidateID(id)
}

func invalidKind(kind object.ObjectKind) error {
	return gkerrors.NewValidationError("invalid object type", string(kind))
}
