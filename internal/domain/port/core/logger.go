package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for verbose diagnostic output
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for normal operational events
	LogLevelInfo
	// LogLevelWarn for recoverable anomalies
	LogLevelWarn
	// LogLevelError for failures that need attention
	LogLevelError
)

// Logger defines the structured logging operations available to the domain
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// Debug logs a message at debug level
	Debug(message string, fields map[string]any)
	// Info logs a message at info level
	Info(message string, fields map[string]any)
	// Warn logs a message at warn level
	Warn(message string, fields map[string]any)
	// Error logs a message at error level
	Error(message string, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
