package pathkit

import (
	"testing"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "defaults",
			config:  Config{WalkMaxDepth: -1, BackupSuffix: ".bak", LogLevel: "warn"},
			wantErr: false,
		},
		{
			name:    "empty backup suffix",
			config:  Config{LogLevel: "warn"},
			wantErr: true,
		},
		{
			name:    "bad log level",
			config:  Config{BackupSuffix: ".bak", LogLevel: "loud"},
			wantErr: true,
		},
		{
			name:    "bad skip pattern",
			config:  Config{BackupSuffix: ".bak", LogLevel: "warn", WalkSkip: "[unterminated"},
			wantErr: true,
		},
		{
			name:    "skip pattern list",
			config:  Config{BackupSuffix: ".bak", LogLevel: "warn", WalkSkip: "node_modules/**, .git/**"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(&tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetConfigDefaults(t *testing.T) {
	cfg, err := GetConfig()
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if cfg.WalkMaxDepth != -1 {
		t.Errorf("WalkMaxDepth = %d, want -1", cfg.WalkMaxDepth)
	}
	if cfg.WalkFollowSymlinks {
		t.Error("WalkFollowSymlinks defaults true, want false")
	}
	if cfg.BackupSuffix != ".bak" {
		t.Errorf("BackupSuffix = %q, want .bak", cfg.BackupSuffix)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestGetConfigFromEnv(t *testing.T) {
	t.Setenv("PATHKIT_WALK_MAX_DEPTH", "3")
	t.Setenv("PATHKIT_WALK_FOLLOW_SYMLINKS", "true")
	t.Setenv("PATHKIT_WALK_SKIP", ".git/**,node_modules/**")

	cfg, err := GetConfig()
	if err != nil {
		t.Fatalf("GetConfig: %v", err)
	}
	if cfg.WalkMaxDepth != 3 {
		t.Errorf("WalkMaxDepth = %d, want 3", cfg.WalkMaxDepth)
	}
	if !cfg.WalkFollowSymlinks {
		t.Error("WalkFollowSymlinks = false, want true")
	}

	patterns := cfg.skipPatterns()
	if len(patterns) != 2 || patterns[0] != ".git/**" || patterns[1] != "node_modules/**" {
		t.Errorf("skipPatterns = %v", patterns)
	}

	opts := cfg.WalkOptions()
	if len(opts) != 3 {
		t.Errorf("WalkOptions rendered %d options, want 3", len(opts))
	}
}
