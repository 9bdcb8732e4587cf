package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	Content  ContentConfig  `mapstructure:"content"`
	Task     TaskConfig     `mapstructure:"task" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"min=1"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL runs the server without progress persistence.
type DatabaseConfig struct {
	URL                    string `mapstructure:"url" validate:"omitempty,url"`
	MaxOpenConns           int    `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns           int    `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifetimeMinutes int    `mapstructure:"conn_max_lifetime_minutes" validate:"min=0"`
}

// AuthConfig contains the settings used to verify identity tokens issued
// by the sign-in provider.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,min=1"`
}

// ContentConfig points at an optional vocabulary file replacing the
// embedded word list. Supported formats: .json, .xlsx, .csv.
type ContentConfig struct {
	WordListPath string `mapstructure:"word_list_path"`
}

// TaskConfig sizes the background worker pool that records quiz attempts.
type TaskConfig struct {
	WorkerCount int `mapstructure:"worker_count" validate:"min=1,max=64"`
	QueueSize   int `mapstructure:"queue_size" validate:"min=1"`
}
