package logs

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

type contextKey string

// ContextKeyTraceID is the key used to keep a trace identifier
// in a context passed to a Logger
const ContextKeyTraceID contextKey = "trace_id"

// GetTraceID returns the trace identifier kept in the context, or
// 0 if the context does not carry one
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	if id, ok := ctx.Value(ContextKeyTraceID).(int64); ok {
		return id
	}

	return 0
}

// Fields collects the key/value pairs attached to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by values that know how to describe
// themselves as a set of Fields
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a Loggable backed by a map
type MapFields map[string]interface{}

// Add implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for k, v := range f {
		fields.Add(k, v)
	}
}

// Logger is the logging interface used across the module
type Logger interface {
	Debug(ctx context.Context, msg string, loggable Loggable)
	Info(ctx context.Context, msg string, loggable Loggable)
	Warn(ctx context.Context, msg string, loggable Loggable)
	Error(ctx context.Context, msg string, loggable Loggable)

	// ForClass returns a Logger that tags every entry with
	// the layer and class that produced it
	ForClass(layer, class string) Logger
}

// LogrusLoggerProperties are the properties used to create
// a Logger backed by logrus
type LogrusLoggerProperties struct {
	// Level is the minimum level that will be written
	Level logrus.Level

	// Output is where entries are written. Defaults to io.Discard
	Output io.Writer

	// Formatter formats entries. Defaults to logrus.TextFormatter
	Formatter logrus.Formatter
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

// LogrusLogger is the implementation of Logger using logrus
type LogrusLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// NewLogrus creates a new Logger backed by a fresh logrus.Logger
func NewLogrus(props LogrusLoggerProperties) *LogrusLogger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output == nil {
		logger.SetOutput(io.Discard)
	} else {
		logger.SetOutput(props.Output)
	}

	if props.Formatter != nil {
		logger.SetFormatter(props.Formatter)
	}

	return NewLogrusFromLogger(logger)
}

// NewLogrusFromLogger wraps an existing logrus.Logger
func NewLogrusFromLogger(logger *logrus.Logger) *LogrusLogger {
	return &LogrusLogger{logger: logger, fields: logrus.Fields{}}
}

// ForClass implementation of Logger for LogrusLogger
func (l *LogrusLogger) ForClass(layer, class string) Logger {
	fields := make(logrus.Fields, len(l.fields)+2)
	for k, v := range l.fields {
		fields[k] = v
	}
	fields["layer"] = layer
	fields["class"] = class

	return &LogrusLogger{logger: l.logger, fields: fields}
}

func (l *LogrusLogger) entry(ctx context.Context, loggable Loggable) *logrus.Entry {
	fields := make(logrusFields, len(l.fields)+4)
	for k, v := range l.fields {
		fields[k] = v
	}

	if id := GetTraceID(ctx); id != 0 {
		fields["trace_id"] = id
	}

	if loggable != nil {
		loggable.Log(fields)
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

// Debug implementation of Logger for LogrusLogger
func (l *LogrusLogger) Debug(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Debug(msg)
}

// Info implementation of Logger for LogrusLogger
func (l *LogrusLogger) Info(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Info(msg)
}

// Warn implementation of Logger for LogrusLogger
func (l *LogrusLogger) Warn(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Warn(msg)
}

// Error implementation of Logger for LogrusLogger
func (l *LogrusLogger) Error(ctx context.Context, msg string, loggable Loggable) {
	l.entry(ctx, loggable).Error(msg)
}
