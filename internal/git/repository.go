package git

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"

	gkerrors "stackit.dev/gitkit/internal/errors"
)

// Repository exposes typed git operations on top of an Executor.
type Repository struct {
	exec Executor
}

// NewRepository wraps an Executor.
func NewRepository(exec Executor) *Repository {
	return &Repository{exec: exec}
}

// Open returns a Repository backed by a new Runner configured with cfg.
func Open(cfg Config, logger *slog.Logger) *Repository {
	return NewRepository(NewRunner(cfg, logger))
}

// Executor returns the underlying executor.
func (r *Repository) Executor() Executor {
	return r.exec
}

// As runs fn with every operation scoped to the repository at dir. The
// previous working directory is restored on exit.
func (r *Repository) As(dir string, fn func(*Repository) error) error {
	restore := r.exec.Push(Config{WorkDir: dir})
	defer restore()
	return fn(r)
}

// Root returns the top-level directory of the repository containing the
// current working directory.
func (r *Repository) Root() (string, error) {
	dir := r.exec.Current().WorkDir
	if dir == "" {
		dir = "."
	}
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", gkerrors.NewNotFoundError("repository", absPath)
		}
		return "", fmt.Errorf("failed to open repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return absPath, nil
		}
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}
	return worktree.Filesystem.Root(), nil
}

// asNotFound converts a git failure whose diagnostic contains one of markers
// into a NotFoundError. Other errors pass through unchanged.
func asNotFound(err error, kind, name string, markers ...string) error {
	var toolErr *gkerrors.ExternalToolError
	if !errors.As(err, &toolErr) {
		return err
	}
	diag := toolErr.Message + "\n" + toolErr.Stderr
	for _, marker := range markers {
		if strings.Contains(diag, marker) {
			return gkerrors.NewNotFoundError(kind, name)
		}
	}
	return err
}

// Diagnostics git prints for names that do not resolve.
const (
	markerBadObject   = "Not a valid object name"
	markerBadRevision = "unknown revision"
	markerNotTree     = "not a tree object"
	markerBadRef      = "not a valid ref"
	markerNeedsSingle = "Needed a single revision"
)
