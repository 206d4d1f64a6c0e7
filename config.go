package pathkit

import (
	"fmt"
	"strings"

	"github.com/gobeaver/beaver-kit/config"
	"github.com/gobwas/glob"
)

// Config carries environment-driven defaults for walks and backups.
type Config struct {
	// Default walk options
	WalkMaxDepth       int    `env:"PATHKIT_WALK_MAX_DEPTH,default:-1"`
	WalkFollowSymlinks bool   `env:"PATHKIT_WALK_FOLLOW_SYMLINKS,default:false"`
	WalkSkip           string `env:"PATHKIT_WALK_SKIP"` // comma-separated glob patterns

	// Backup naming
	BackupSuffix string `env:"PATHKIT_BACKUP_SUFFIX,default:.bak"`

	// Logging
	LogLevel string `env:"PATHKIT_LOG_LEVEL,default:warn"`
}

// GetConfig returns config loaded from environment
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.BackupSuffix == "" {
		return fmt.Errorf("backup suffix is required")
	}
	if _, err := LogLevelFromString(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}
	for _, p := range cfg.skipPatterns() {
		if _, err := glob.Compile(p, '/'); err != nil {
			return fmt.Errorf("invalid skip pattern: %s", p)
		}
	}
	return nil
}

// WalkOptions renders the configured defaults as walk options.
func (c *Config) WalkOptions() []WalkOption {
	opts := []WalkOption{WithMaxDepth(c.WalkMaxDepth)}
	if c.WalkFollowSymlinks {
		opts = append(opts, WithFollowSymlinks())
	}
	if skip := c.skipPatterns(); len(skip) > 0 {
		opts = append(opts, WithSkip(skip...))
	}
	return opts
}

func (c *Config) skipPatterns() []string {
	if strings.TrimSpace(c.WalkSkip) == "" {
		return nil
	}
	parts := strings.Split(c.WalkSkip, ",")
	patterns := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}
