package git

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	gkerrors "stackit.dev/gitkit/internal/errors"
	"stackit.dev/gitkit/internal/protocol"
)

// Executor runs git commands under a scoped Config.
// Repository depends on this interface so tests can substitute canned output.
type Executor interface {
	// Run returns stdout with surrounding whitespace trimmed.
	Run(ctx context.Context, args ...string) (string, error)
	// RunRaw returns stdout untouched, for decoders that care about leading columns.
	RunRaw(ctx context.Context, args ...string) (string, error)
	// RunWithInput feeds input on stdin and returns trimmed stdout.
	RunWithInput(ctx context.Context, input string, args ...string) (string, error)
	// Current returns the effective configuration.
	Current() Config
	// Push scopes frame over the current configuration until restore is called.
	Push(frame Config) (restore func())
}

// Runner handles execution of git commands.
type Runner struct {
	mu     sync.Mutex
	frames []Config
	logger *slog.Logger
}

// NewRunner creates a Runner whose base frame is cfg. A nil logger discards.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		frames: []Config{DefaultConfig().overlay(cfg)},
		logger: logger,
	}
}

// Current returns the innermost configuration frame.
func (r *Runner) Current() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames[len(r.frames)-1]
}

// Push overlays frame on the current configuration. The returned restore
// pops back to the depth Push was called at, discarding any inner frames
// left behind; calling it again is a no-op.
func (r *Runner) Push(frame Config) (restore func()) {
	r.mu.Lock()
	depth := len(r.frames)
	r.frames = append(r.frames, r.frames[depth-1].overlay(frame))
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if len(r.frames) > depth {
				r.frames = r.frames[:depth]
			}
		})
	}
}

// As runs fn with the working directory scoped to dir. The outer directory
// is restored when fn returns, fails or panics.
func (r *Runner) As(dir string, fn func() error) error {
	restore := r.Push(Config{WorkDir: dir})
	defer restore()
	return fn()
}

// Run executes a git command and returns its trimmed output
func (r *Runner) Run(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "", true, args...)
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *Runner) RunRaw(ctx context.Context, args ...string) (string, error) {
	return r.runInternal(ctx, "", false, args...)
}

// RunWithInput executes a git command with input on stdin
func (r *Runner) RunWithInput(ctx context.Context, input string, args ...string) (string, error) {
	return r.runInternal(ctx, input, true, args...)
}

// RunLines executes a git command and returns output as lines
func (r *Runner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.RunRaw(ctx, args...)
	if err != nil {
		return nil, err
	}
	return protocol.Lines(output), nil
}

// runInternal performs one spawn-wait-collect cycle.
func (r *Runner) runInternal(ctx context.Context, input string, trim bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := r.Current()

	// If no timeout/deadline is set in the context, add the configured one
	if _, ok := ctx.Deadline(); !ok {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultCommandTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, cfg.GitPath, args...)
	if cfg.WorkDir != "" {
		cmd.Dir = cfg.WorkDir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(os.Environ(), cfg.Env...)
	}
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	r.logger.Debug("git",
		slog.String("args", strings.Join(args, " ")),
		slog.String("dir", cfg.WorkDir),
		slog.Duration("took", time.Since(start)),
		slog.Bool("ok", err == nil),
	)

	if err != nil {
		return "", r.commandError(ctx, cfg, args, stdout.String(), stderr.String(), err)
	}
	// Data goes to stdout, so only stderr is scanned on success; a blob
	// that happens to contain "error:" must not fail cat-file.
	if err := protocol.CheckFailure(cfg.GitPath, args, stderr.String()); err != nil {
		return "", err
	}

	if trim {
		return strings.TrimSpace(stdout.String()), nil
	}
	return stdout.String(), nil
}

func (r *Runner) commandError(ctx context.Context, cfg Config, args []string, stdout, stderr string, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		err = ctx.Err()
	}
	toolErr := gkerrors.NewExternalToolError(cfg.GitPath, args, stdout, stderr, err)
	toolErr.ExitCode = -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		toolErr.ExitCode = exitErr.ExitCode()
	}
	if line, ok := protocol.FailureLine(stderr); ok {
		toolErr.Message = line
	} else if line, ok := protocol.FailureLine(stdout); ok {
		toolErr.Message = line
	}
	return toolErr
}

var _ Executor = (*Runner)(nil)
