package logging

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// New builds the application logger. Debug selects a development console
// logger at debug level, otherwise a production logger at info level.
// Every entry carries the session id of this run.
func New(debug bool) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		config.DisableStacktrace = true
		logger, err = config.Build()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger.With(zap.String("session", uuid.NewString())), nil
}
