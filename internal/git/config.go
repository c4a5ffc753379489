package git

import (
	"time"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// DefaultGitPath is the executable used when Config.GitPath is empty
const DefaultGitPath = "git"

// Config describes how git is invoked.
type Config struct {
	// GitPath is the git executable, looked up on PATH when not absolute.
	GitPath string
	// WorkDir is the directory git runs in. Empty means the process cwd.
	WorkDir string
	// Env is appended to the inherited environment.
	Env []string
	// Timeout bounds each invocation whose context has no deadline.
	Timeout time.Duration
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		GitPath: DefaultGitPath,
		Timeout: DefaultCommandTimeout,
	}
}

// overlay returns c with every non-zero field of frame applied on top.
func (c Config) overlay(frame Config) Config {
	out := c
	if frame.GitPath != "" {
		out.GitPath = frame.GitPath
	}
	if frame.WorkDir != "" {
		out.WorkDir = frame.WorkDir
	}
	if len(frame.Env) > 0 {
		out.Env = append(append([]string{}, c.Env...), frame.Env...)
	}
	if frame.Timeout > 0 {
		out.Timeout = frame.Timeout
	}
	return out
}
