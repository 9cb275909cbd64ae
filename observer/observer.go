// Package observer provides [again.OnRetryFunc] implementations for logging
// and counting retries.
//
// Observers never fail on their own, so they can be combined freely with
// [Chain]:
//
//	m := observer.NewMetrics("myapp", "upstream")
//	m.MustRegister(prometheus.DefaultRegisterer)
//
//	err := again.Run(ctx, sync, again.OnRetry(observer.Chain(
//		observer.Zap(logger, "sync failed, retrying"),
//		m.OnRetry("sync"),
//	)))
package observer

import (
	"andy.dev/again"
)

// Chain returns an observer that calls each fn in order. It stops at, and
// returns, the first error.
func Chain(fns ...again.OnRetryFunc) again.OnRetryFunc {
	return func(err error, attempt int) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if oerr := fn(err, attempt); oerr != nil {
				return oerr
			}
		}
		return nil
	}
}

// reason classifies a retry cause for logs and metric labels.
func reason(err error) string {
	if again.IsTimeout(err) {
		return ReasonTimeout
	}
	return ReasonError
}

const (
	ReasonTimeout = "timeout"
	ReasonError   = "error"
)
