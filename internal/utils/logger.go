package utils

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

type Fields = logrus.Fields

const (
	CorrelationIDKey contextKey = "correlation_id"
	RequestIDKey     contextKey = "request_id"
)

// logger is the process-wide logger. It starts at info level and is
// replaced by InitLogger once configuration has been loaded.
var logger = newLogger(logrus.InfoLevel)

func newLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetLevel(level)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})
	return l
}

// InitLogger rebuilds the process logger at the configured level. The level
// string comes from configuration, not from the environment directly, so
// values loaded from a .env file take effect. An unparsable level falls back
// to info.
func InitLogger(level string) *logrus.Logger {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger = newLogger(parsed)
	if err != nil {
		logger.Warnf("Invalid log level %q, defaulting to info", level)
	}
	return logger
}

func GetLogger() *logrus.Logger {
	return logger
}

func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}

func GenerateCorrelationID() string {
	return uuid.New().String()
}

func GenerateRequestID() string {
	return "req_" + uuid.New().String()
}

// LoggerFromContext returns an entry tagged with the correlation and request
// IDs carried by ctx, when present.
func LoggerFromContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(logger)

	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		entry = entry.WithField("correlation_id", correlationID)
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		entry = entry.WithField("request_id", requestID)
	}

	return entry
}

func entryFor(ctx context.Context, fields []Fields) *logrus.Entry {
	entry := LoggerFromContext(ctx)
	for _, f := range fields {
		entry = entry.WithFields(f)
	}
	return entry
}

func LogInfo(ctx context.Context, message string, fields ...Fields) {
	entryFor(ctx, fields).Info(message)
}

func LogError(ctx context.Context, message string, err error, fields ...Fields) {
	entryFor(ctx, fields).WithError(err).Error(message)
}

func LogWarn(ctx context.Context, message string, fields ...Fields) {
	entryFor(ctx, fields).Warn(message)
}

func LogDebug(ctx context.Context, message string, fields ...Fields) {
	entryFor(ctx, fields).Debug(message)
}
