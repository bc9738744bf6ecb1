package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds the process-wide zap logger. APP_ENV=production selects the
// JSON production config; anything else gets the human-readable development
// config. Construction never fails the process on a bad config — it falls
// back to a no-op logger.
func New() *zap.Logger {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))

	var (
		l   *zap.Logger
		err error
	)
	if env == "production" || env == "prod" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}
