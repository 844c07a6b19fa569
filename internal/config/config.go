package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	API    APIConfig    `mapstructure:"api"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// APIConfig contains settings for the JSON API surface.
type APIConfig struct {
	// TruncateLimit is the body length, in user-perceived characters, applied when
	// a request asks for truncation without naming a limit.
	TruncateLimit int `mapstructure:"truncate_limit" validate:"gte=0"`
}
