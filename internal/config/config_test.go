package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Port:              "8082",
		DataBackend:       "memory",
		SQLiteDBPath:      "./test.db",
		ExportCooldown:    2 * time.Second,
		RequestsPerMinute: 60,
		MetadataTimeout:   5 * time.Second,
		MetadataCacheTTL:  time.Minute,
		MetadataCacheMax:  10,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid memory backend config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			mutate:      func(c *Config) { c.Port = "0" },
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid data backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets'",
		},
		{
			name: "sqlite backend missing database path",
			mutate: func(c *Config) {
				c.DataBackend = "sqlite"
				c.SQLiteDBPath = ""
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty",
		},
		{
			name:        "non-positive cooldown",
			mutate:      func(c *Config) { c.ExportCooldown = 0 },
			wantErr:     true,
			errorString: "export cooldown must be positive",
		},
		{
			name:        "non-positive rate limit",
			mutate:      func(c *Config) { c.RequestsPerMinute = -1 },
			wantErr:     true,
			errorString: "rate limit must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("error %q does not contain %q", err.Error(), tt.errorString)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "EXPORT_COOLDOWN", "RATE_LIMIT_RPM"} {
		os.Unsetenv(key)
	}
	cfg := Load()
	if cfg.Port != "8082" {
		t.Fatalf("default port: got %q", cfg.Port)
	}
	if cfg.DataBackend != "sqlite" {
		t.Fatalf("default backend: got %q", cfg.DataBackend)
	}
	if cfg.ExportCooldown != 2*time.Second {
		t.Fatalf("default cooldown: got %v", cfg.ExportCooldown)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("EXPORT_COOLDOWN", "5s")
	t.Setenv("RATE_LIMIT_RPM", "30")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Fatalf("port: got %q", cfg.Port)
	}
	if cfg.ExportCooldown != 5*time.Second {
		t.Fatalf("cooldown: got %v", cfg.ExportCooldown)
	}
	if cfg.RequestsPerMinute != 30 {
		t.Fatalf("rpm: got %d", cfg.RequestsPerMinute)
	}
}
