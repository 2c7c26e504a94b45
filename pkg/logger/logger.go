package logger

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const contextKey = "logger"

var nop = zap.NewNop()

// New builds the process logger. Development gets debug level and a console encoder.
func New(appEnv string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if appEnv == "development" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return log, nil
}

// Attach stores a request-scoped logger on the gin context.
func Attach(c *gin.Context, log *zap.Logger) {
	c.Set(contextKey, log)
}

// From returns the request-scoped logger, or a no-op logger outside a request.
func From(c *gin.Context) *zap.Logger {
	if c != nil {
		if v, ok := c.Get(contextKey); ok {
			if log, ok := v.(*zap.Logger); ok {
				return log
			}
		}
	}
	return nop
}
