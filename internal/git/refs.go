package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/object"
	"stackit.dev/gitkit/internal/protocol"
)

const headsPrefix = "refs/heads/"

// ShowRefs lists refs matching patterns (all refs when none are given) as a
// ref name to object id mapping.
func (r *Repository) ShowRefs(ctx context.Context, patterns ...string) (protocol.RefMapping, error) {
	args := append([]string{"show-ref"}, patterns...)
	output, err := r.exec.RunRaw(ctx, args...)
	if err != nil {
		// show-ref exits 1 with no output when nothing matches
		if isSilentExit(err, 1) {
			return protocol.RefMapping{}, nil
		}
		return nil, fmt.Errorf("failed to list refs: %w", err)
	}
	return protocol.ReverseIndex(output)
}

// Heads returns local branches as a short name to object id mapping.
func (r *Repository) Heads(ctx context.Context) (protocol.RefMapping, error) {
	output, err := r.exec.RunRaw(ctx, "for-each-ref", "--format=%(objectname) %(refname)", headsPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list heads: %w", err)
	}
	refs, err := protocol.ReverseIndex(output)
	if err != nil {
		return nil, err
	}
	heads := make(protocol.RefMapping, len(refs))
	for name, id := range refs {
		heads[strings.TrimPrefix(name, headsPrefix)] = id
	}
	return heads, nil
}

// RefID returns the object id a fully qualified ref points at.
func (r *Repository) RefID(ctx context.Context, ref string) (string, error) {
	output, err := r.exec.RunRaw(ctx, "show-ref", "--verify", ref)
	if err != nil {
		if isSilentExit(err, 1) {
			return "", gkerrors.NewNotFoundError("ref", ref)
		}
		return "", asNotFound(err, "ref", ref, markerBadRef)
	}
	refs, err := protocol.ReverseIndex(output)
	if err != nil {
		return "", err
	}
	id, ok := refs[ref]
	if !ok {
		return "", gkerrors.NewNotFoundError("ref", ref)
	}
	return object.ValidateID(id)
}

// RevParse resolves any revision expression to a full object id.
func (r *Repository) RevParse(ctx context.Context, rev string) (string, error) {
	id, err := r.exec.Run(ctx, "rev-parse", "--verify", "--quiet", rev)
	if err != nil {
		if isSilentExit(err, 1) {
			return "", gkerrors.NewNotFoundError("revision", rev)
		}
		return "", asNotFound(err, "revision", rev, markerNeedsSingle, markerBadRevision)
	}
	return object.ValidateID(id)
}

// BatchRevParse resolves revs concurrently and returns the first failure.
func (r *Repository) BatchRevParse(ctx context.Context, revs []string) (map[string]string, error) {
	results := make(map[string]string, len(revs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, rev := range revs {
		g.Go(func() error {
			id, err := r.RevParse(ctx, rev)
			if err != nil {
				return fmt.Errorf("failed to get revision for %s: %w", rev, err)
			}
			mu.Lock()
			results[rev] = id
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Branches returns the local branch listing.
func (r *Repository) Branches(ctx context.Context) ([]protocol.Branch, error) {
	output, err := r.exec.RunRaw(ctx, "branch", "--list", "--no-color")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return protocol.ParseBranchList(output)
}

// BranchNames returns the names of all local branches.
func (r *Repository) BranchNames(ctx context.Context) ([]string, error) {
	branches, err := r.Branches(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(branches))
	for _, b := range branches {
		if b.Name != "" {
			names = append(names, b.Name)
		}
	}
	return names, nil
}

// CurrentBranch returns the checked-out branch name.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	branches, err := r.Branches(ctx)
	if err != nil {
		return "", err
	}
	name := protocol.CurrentBranch(branches)
	if name == "" {
		return "", gkerrors.NewNotFoundError("branch", "HEAD")
	}
	return name, nil
}

// isSilentExit reports whether err is a git exit with the given code and no
// output on either stream.
func isSilentExit(err error, code int) bool {
	var toolErr *gkerrors.ExternalToolError
	if !errors.As(err, &toolErr) {
		return false
	}
	return toolErr.ExitCode == code && toolErr.Stdout == "" && toolErr.Stderr == ""
}
