package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Init is process-global, so the defaults path is exercised once and
// everything else goes through the struct validator.
func TestInitDefaults(t *testing.T) {
	require.NoError(t, Init())

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, "sqlite", GetString("database.backend"))
	assert.Equal(t, "local", GetString("storage.backend"))

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "episode-covers", cfg.Storage.Bucket)
	assert.Equal(t, 1600, cfg.Storage.MaxImageWidth)
	assert.True(t, cfg.RateLimiting.Enabled)

	assert.False(t, IsProduction())
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Host: "localhost", Port: 8080},
			Database: DatabaseConfig{Backend: "sqlite", Path: "./test.db"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid sqlite config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "valid memory config without path",
			mutate: func(c *Config) {
				c.Database = DatabaseConfig{Backend: "memory"}
			},
			wantErr: false,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Server.Port = 0 },
			wantErr: true,
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Database.Backend = "postgres" },
			wantErr: true,
		},
		{
			name:    "sqlite without path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
