package config

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// LoadLogConfig loads logger settings from environment variables
func LoadLogConfig(getenv func(string) string) LogConfig {
	config := LogConfig{
		Level:  getenv("LOG_LEVEL"),
		Format: getenv("LOG_FORMAT"),
	}
	if config.Level == "" {
		config.Level = "info"
	}
	if config.Format == "" {
		config.Format = "text"
	}
	return config
}
