package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "missing secret",
			env:     map[string]string{"JWT_SECRET": ""},
			wantErr: "JWT_SECRET is required",
		},
		{
			name: "defaults",
			env:  map[string]string{"JWT_SECRET": "s3cret"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 5000 {
					t.Errorf("Port = %d, want 5000", cfg.Port)
				}
				if cfg.PortAttempts != 10 {
					t.Errorf("PortAttempts = %d, want 10", cfg.PortAttempts)
				}
				if cfg.Database.Name != "luct_reporting_system" || cfg.Database.AdminName != "postgres" {
					t.Errorf("unexpected database names %+v", cfg.Database)
				}
				if cfg.Database.ConnectTimeout != 5*time.Second {
					t.Errorf("ConnectTimeout = %v", cfg.Database.ConnectTimeout)
				}
				if !cfg.DebugRoutes {
					t.Error("debug routes should default on outside production")
				}
				if cfg.LogLevel != slog.LevelInfo {
					t.Errorf("LogLevel = %v", cfg.LogLevel)
				}
			},
		},
		{
			name: "production hides debug routes",
			env:  map[string]string{"JWT_SECRET": "s3cret", "ENVIRONMENT": "production"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.DebugRoutes {
					t.Error("debug routes should default off in production")
				}
				if !cfg.IsProduction() {
					t.Error("IsProduction() = false")
				}
			},
		},
		{
			name: "explicit overrides",
			env: map[string]string{
				"JWT_SECRET":          "s3cret",
				"PORT":                "6001",
				"DB_DISABLED":         "true",
				"ENABLE_DEBUG_ROUTES": "false",
				"LOG_LEVEL":           "debug",
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != 6001 || !cfg.Database.Disabled || cfg.DebugRoutes || cfg.LogLevel != slog.LevelDebug {
					t.Errorf("overrides not applied: %+v", cfg)
				}
			},
		},
		{
			name:    "bad port",
			env:     map[string]string{"JWT_SECRET": "s3cret", "PORT": "eighty"},
			wantErr: "invalid PORT",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"JWT_SECRET": "s3cret", "PORT": "70000"},
			wantErr: "PORT must be between",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"JWT_SECRET": "s3cret", "LOG_LEVEL": "loud"},
			wantErr: "invalid LOG_LEVEL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "PORT_ATTEMPTS", "ENVIRONMENT", "DB_DISABLED", "ENABLE_DEBUG_ROUTES", "LOG_LEVEL", "DB_CONNECT_TIMEOUT", "DB_NAME", "DB_ADMIN_NAME"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() unexpected error: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestDatabaseConfigDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:           "db",
		Port:           "5432",
		User:           "postgres",
		Password:       "it's secret",
		SSLMode:        "disable",
		ConnectTimeout: 3 * time.Second,
	}

	got := d.DSN("postgres")
	want := `host=db port=5432 user=postgres password='it\'s secret' dbname=postgres sslmode=disable connect_timeout=3`
	if got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	// Every value is quoted when it would otherwise split the key/value list.
	d.User = "db admin"
	d.Password = "secret"
	got = d.DSN(`o'neil db`)
	want = `host=db port=5432 user='db admin' password=secret dbname='o\'neil db' sslmode=disable connect_timeout=3`
	if got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
