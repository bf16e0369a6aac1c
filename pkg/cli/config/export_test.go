package config

// NewAppConfigForTest creates an AppConfig bound to a file path for
// testing purposes
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
