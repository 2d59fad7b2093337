package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Auth    AuthConfig    `mapstructure:"auth"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds Viddler API connection details
type APIConfig struct {
	URL string `mapstructure:"url" env:"VIDDLER_API_URL,default=http://api.viddler.com/rest/v1/"`
	Key string `mapstructure:"key" env:"VIDDLER_API_KEY"`
}

// AuthConfig holds the credentials used to open a session
type AuthConfig struct {
	Username string `mapstructure:"username" env:"VIDDLER_USERNAME"`
	Password string `mapstructure:"password" env:"VIDDLER_PASSWORD"`
}

// HTTPConfig contains transport settings
type HTTPConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" env:"VIDDLER_HTTP_TIMEOUT,default=30s"`
	UserAgent string        `mapstructure:"user_agent" env:"VIDDLER_USER_AGENT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level" env:"VIDDLER_LOG_LEVEL,default=info"`
	Format string `mapstructure:"format" env:"VIDDLER_LOG_FORMAT,default=console"`
	Color  bool   `mapstructure:"color" env:"VIDDLER_LOG_COLOR,default=true"`
}
