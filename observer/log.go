package observer

import (
	"log/slog"

	"github.com/rs/zerolog"
	"go.uber.org/zap"

	"andy.dev/again"
)

// Zap logs each retry at warn level with the error, the attempt number and
// the retry reason.
func Zap(logger *zap.Logger, msg string) again.OnRetryFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(err error, attempt int) error {
		logger.Warn(msg,
			zap.Error(err),
			zap.Int("attempt", attempt),
			zap.String("reason", reason(err)),
		)
		return nil
	}
}

// Zerolog logs each retry at warn level with the error, the attempt number
// and the retry reason.
func Zerolog(logger zerolog.Logger, msg string) again.OnRetryFunc {
	return func(err error, attempt int) error {
		logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Str("reason", reason(err)).
			Msg(msg)
		return nil
	}
}

// Slog logs each retry at warn level with the error, the attempt number and
// the retry reason. A nil logger uses slog.Default().
func Slog(logger *slog.Logger, msg string) again.OnRetryFunc {
	return func(err error, attempt int) error {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.Warn(msg,
			"error", err,
			"attempt", attempt,
			"reason", reason(err),
		)
		return nil
	}
}
