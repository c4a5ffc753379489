package git

import (
	"context"
	"fmt"

	"stackit.dev/gitkit/internal/object"
)

// Init creates a repository in the working directory.
func (r *Repository) Init(ctx context.Context, bare bool, initialBranch string) error {
	args := []string{"init"}
	if bare {
		args = append(args, "--bare")
	}
	if initialBranch != "" {
		args = append(args, "-b", initialBranch)
	}
	if _, err := r.exec.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to init repository: %w", err)
	}
	return nil
}

// Checkout checks out an existing branch or revision
func (r *Repository) Checkout(ctx context.Context, rev string) error {
	if _, err := r.exec.Run(ctx, "checkout", rev); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", rev, err)
	}
	return nil
}

// CreateBranch creates a branch at start (HEAD when empty) without checking it out
func (r *Repository) CreateBranch(ctx context.Context, name, start string) error {
	args := []string{"branch", name}
	if start != "" {
		args = append(args, start)
	}
	if _, err := r.exec.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a branch; force deletes it even when unmerged
func (r *Repository) DeleteBranch(ctx context.Context, name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	if _, err := r.exec.Run(ctx, "branch", flag, name); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// PushOptions controls Push.
type PushOptions struct {
	Force          bool
	ForceWithLease bool
	SetUpstream    bool
}

// Push pushes refspec to remote
func (r *Repository) Push(ctx context.Context, remote, refspec string, opts PushOptions) error {
	args := []string{"push"}
	if opts.SetUpstream {
		args = append(args, "-u")
	}
	if opts.Force {
		args = append(args, "--force")
	} else if opts.ForceWithLease {
		args = append(args, "--force-with-lease")
	}
	args = append(args, remote)
	if refspec != "" {
		args = append(args, refspec)
	}
	if _, err := r.exec.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to push %s to %s: %w", refspec, remote, err)
	}
	return nil
}

// Pull fetches branch from remote and integrates it into the current branch
func (r *Repository) Pull(ctx context.Context, remote, branch string) error {
	args := []string{"pull", "--no-edit"}
	if remote != "" {
		args = append(args, remote)
		if branch != "" {
			args = append(args, branch)
		}
	}
	if _, err := r.exec.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

// Merge merges rev into the current branch
func (r *Repository) Merge(ctx context.Context, rev string, noFastForward bool) error {
	args := []string{"merge", "--no-edit"}
	if noFastForward {
		args = append(args, "--no-ff")
	}
	args = append(args, rev)
	if _, err := r.exec.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to merge %s: %w", rev, err)
	}
	return nil
}

// Rebase rebases the current branch onto upstream
func (r *Repository) Rebase(ctx context.Context, upstream string) error {
	if _, err := r.exec.Run(ctx, "rebase", upstream); err != nil {
		return fmt.Errorf("failed to rebase onto %s: %w", upstream, err)
	}
	return nil
}

// UpdateRef points ref at id
func (r *Repository) UpdateRef(ctx context.Context, ref, id string) error {
	if _, err := object.ValidateID(id); err != nil {
		return err
	}
	if _, err := r.exec.Run(ctx, "update-ref", ref, id); err != nil {
		return fmt.Errorf("failed to update %s: %w", ref, err)
	}
	return nil
}
