package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system
// This should be called once at application startup
func Init() error {
	once.Do(func() {
		// Set default values
		setDefaults()

		// Set up environment variable reading for overrides
		viper.SetEnvPrefix("CATALOG")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		// Load config from fixed location (cleaned for safety)
		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		// Try to read the config file
		if err := viper.ReadInConfig(); err != nil {
			// If the config file doesn't exist, just use defaults and env vars
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		// Validate the configuration
		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	backend := viper.GetString("database.backend")
	if backend != "sqlite" && backend != "memory" {
		return fmt.Errorf("invalid database backend: %q (want sqlite or memory)", backend)
	}
	if backend == "sqlite" && viper.GetString("database.path") == "" {
		return fmt.Errorf("database.path is required for the sqlite backend")
	}

	storageBackend := viper.GetString("storage.backend")
	if storageBackend != "supabase" && storageBackend != "local" {
		return fmt.Errorf("invalid storage backend: %q (want supabase or local)", storageBackend)
	}

	env := viper.GetString("environment")
	isProduction := env == "production" || env == "prod"

	password := viper.GetString("auth.admin_password")
	if password == "" {
		if isProduction {
			return fmt.Errorf("auth.admin_password must be set in production")
		}
		fmt.Println("Warning: auth.admin_password is not set - admin login is disabled")
	}

	if viper.GetString("auth.session_secret") == "" {
		if isProduction {
			return fmt.Errorf("auth.session_secret must be set in production")
		}
		fmt.Println("Warning: auth.session_secret is not set - session tokens are unsigned")
	}

	if storageBackend == "supabase" {
		if viper.GetString("storage.supabase_url") == "" || viper.GetString("storage.supabase_key") == "" {
			return fmt.Errorf("storage.supabase_url and storage.supabase_key are required for the supabase backend")
		}
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Backend != "sqlite" && c.Database.Backend != "memory" {
		return fmt.Errorf("invalid database backend: %q", c.Database.Backend)
	}
	if c.Database.Backend == "sqlite" && c.Database.Path == "" {
		return fmt.Errorf("database path is required for the sqlite backend")
	}
	return nil
}

// IsProduction reports whether the app runs with production settings.
func IsProduction() bool {
	env := viper.GetString("environment")
	return env == "production" || env == "prod"
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.backend", "sqlite")
	viper.SetDefault("database.path", "./data/catalog.db")
	viper.SetDefault("database.verbose", false)

	// Auth defaults: password and secret come from the environment
	// (CATALOG_AUTH_ADMIN_PASSWORD, CATALOG_AUTH_SESSION_SECRET)
	viper.SetDefault("auth.admin_password", "")
	viper.SetDefault("auth.session_secret", "")

	// Storage defaults
	viper.SetDefault("storage.backend", "local")
	viper.SetDefault("storage.supabase_url", "")
	viper.SetDefault("storage.supabase_key", "")
	viper.SetDefault("storage.bucket", "episode-covers")
	viper.SetDefault("storage.local_dir", "./data/uploads")
	viper.SetDefault("storage.local_base_url", "/uploads")
	viper.SetDefault("storage.max_image_width", 1600)

	// Rate limiting defaults (requests per second per client)
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.public", 20)
	viper.SetDefault("rate_limiting.admin", 10)

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
}
