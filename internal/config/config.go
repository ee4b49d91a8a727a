// Package config loads service configuration from file, environment and
// flags via viper.
package config

// Config holds all application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Gemini GeminiConfig `mapstructure:"gemini"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// GeminiConfig configures the outbound generation call.
type GeminiConfig struct {
	// APIKey is read from GEMINI_API_KEY; it has no file default on purpose.
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}
