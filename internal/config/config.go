package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"stackit.dev/gitkit/internal/git"
)

// FileName is the per-repository configuration file.
const FileName = ".gitkit.yaml"

// TOMLFileName is read when FileName is absent.
const TOMLFileName = ".gitkit.toml"

// PathEnv names an explicit configuration file, overriding FileName.
const PathEnv = "GITKIT_CONFIG"

// Config is the resolved gitkit configuration.
type Config struct {
	GitPath string        `yaml:"git_path,omitempty" toml:"git_path" env:"GITKIT_GIT_PATH, overwrite"`
	WorkDir string        `yaml:"work_dir,omitempty" toml:"work_dir" env:"GITKIT_WORK_DIR, overwrite"`
	Timeout time.Duration `yaml:"timeout,omitempty" toml:"timeout" env:"GITKIT_TIMEOUT, overwrite"`
	Log     LogConfig     `yaml:"log,omitempty" toml:"log"`
}

// LogConfig controls the rotating debug log. An empty File disables it.
type LogConfig struct {
	File       string `yaml:"file,omitempty" toml:"file" env:"GITKIT_LOG_FILE, overwrite"`
	MaxSize    int    `yaml:"max_size,omitempty" toml:"max_size" env:"GITKIT_LOG_MAX_SIZE, overwrite"`
	MaxBackups int    `yaml:"max_backups,omitempty" toml:"max_backups" env:"GITKIT_LOG_MAX_BACKUPS, overwrite"`
	MaxAge     int    `yaml:"max_age,omitempty" toml:"max_age" env:"GITKIT_LOG_MAX_AGE, overwrite"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		GitPath: git.DefaultGitPath,
		Timeout: git.DefaultCommandTimeout,
		Log: LogConfig{
			MaxSize:    1,  // megabytes
			MaxBackups: 2,
			MaxAge:     30, // days
		},
	}
}

// Load resolves configuration for the repository rooted at repoRoot using
// the process environment.
func Load(ctx context.Context, repoRoot string) (*Config, error) {
	return LoadWith(ctx, repoRoot, envconfig.OsLookuper())
}

// LoadWith is Load with an explicit environment source.
func LoadWith(ctx context.Context, repoRoot string, env envconfig.Lookuper) (*Config, error) {
	cfg := Default()

	if p, ok := env.Lookup(PathEnv); ok && p != "" {
		if err := cfg.readFile(p); err != nil {
			return nil, err
		}
	} else {
		for _, name := range []string{FileName, TOMLFileName} {
			found, err := cfg.readOptional(filepath.Join(repoRoot, name))
			if err != nil {
				return nil, err
			}
			if found {
				break
			}
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: env,
	}); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}

// readOptional is readFile for a file that may not exist.
func (c *Config) readOptional(path string) (bool, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return true, c.readFile(path)
}

// readFile merges the file at path into c, decoding TOML for a .toml
// extension and YAML otherwise.
func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if filepath.Ext(path) == ".toml" {
		if err := toml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return nil
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Save writes c as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GitConfig projects c onto the runner configuration.
func (c *Config) GitConfig() git.Config {
	return git.Config{
		GitPath: c.GitPath,
		WorkDir: c.WorkDir,
		Timeout: c.Timeout,
	}
}
