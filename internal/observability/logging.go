package observability

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/spec-kit/adoptafacil/internal/config"
)

// RequestIDHeader carries the request id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// NewLogger creates a structured zap.Logger configured via env settings.
// Every entry carries the deployment environment.
func NewLogger(cfg config.LoggerConfig, env string) (*zap.Logger, error) {
	logger, err := loggerConfig(cfg, env).Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// loggerConfig keeps JSON output everywhere; outside production it enables
// development mode (stack traces from warn up, DPanic panics).
func loggerConfig(cfg config.LoggerConfig, env string) zap.Config {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	env = strings.ToLower(strings.TrimSpace(env))
	if env == "" {
		env = "development"
	}

	return zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: env != "production",
		Encoding:    "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime: zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"env": env},
	}
}

// RequestLogger assigns a request id, logs each request and records its metrics.
func RequestLogger(logger *zap.Logger, metrics *Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals("request_id", requestID)
		c.Set(RequestIDHeader, requestID)

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path
		metrics.RecordRequest(route, c.Method(), status, duration)

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", duration))
		return err
	}
}
