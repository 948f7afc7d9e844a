package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	Auth         AuthConfig      `mapstructure:"auth"`
	Storage      StorageConfig   `mapstructure:"storage"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Security     SecurityConfig  `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig selects and configures the episode store backend.
// Backend is "sqlite" for the persistent store or "memory" for the
// in-process one.
type DatabaseConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// AuthConfig contains admin session settings. AdminPassword gates
// login; SessionSecret, when set, turns on HMAC-signed session tokens.
type AuthConfig struct {
	AdminPassword string `mapstructure:"admin_password"`
	SessionSecret string `mapstructure:"session_secret"`
}

// StorageConfig configures cover image storage. Backend is "supabase"
// or "local".
type StorageConfig struct {
	Backend       string `mapstructure:"backend"`
	SupabaseURL   string `mapstructure:"supabase_url"`
	SupabaseKey   string `mapstructure:"supabase_key"`
	Bucket        string `mapstructure:"bucket"`
	LocalDir      string `mapstructure:"local_dir"`
	LocalBaseURL  string `mapstructure:"local_base_url"`
	MaxImageWidth int    `mapstructure:"max_image_width"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Public  int  `mapstructure:"public"`
	Admin   int  `mapstructure:"admin"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}
