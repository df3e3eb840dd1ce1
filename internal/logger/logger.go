package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New builds the application logger. The "dev" environment gets a
// human-readable development logger, anything else JSON output.
func New(env string) (*zap.Logger, error) {
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	var (
		log *zap.Logger
		err error
	)
	if strings.EqualFold(env, "dev") {
		log, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.String("env", env)))
		log, err = zap.NewProduction(opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return log, nil
}
