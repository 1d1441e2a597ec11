package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Push     PushConfig     `mapstructure:"push"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=1440"`
}

// PushConfig contains the push-gateway settings. The whole group is
// optional: with no endpoint configured the server runs with push delivery
// disabled and notifications are persistence-only.
type PushConfig struct {
	Endpoint  string `mapstructure:"endpoint" validate:"omitempty,url"`
	ServerKey string `mapstructure:"server_key" validate:"required_with=Endpoint"`
}

// Enabled reports whether a push gateway is configured.
func (p PushConfig) Enabled() bool {
	return p.Endpoint != ""
}
