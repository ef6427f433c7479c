package port

// Fields carries structured data attached to a log record.
type Fields map[string]interface{}

// LoggerPort is the logging contract used by the application core.
// It keeps the core independent from the concrete logger implementation.
type LoggerPort interface {
	Info(msg string, fields Fields)

	Warn(msg string, fields Fields)

	// Error logs a failure, usually together with the error object.
	Error(msg string, err error, fields Fields)

	Debug(msg string, fields Fields)

	// WithFields returns a new logger instance with the fields pre-attached.
	// Useful for request-scoped context such as trace_id.
	WithFields(fields Fields) LoggerPort
}
