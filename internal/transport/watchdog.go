package transport

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
)

// NewWatchdog is the standard adapter plus a warning for requests that run
// close to the budget. The warning never interrupts the request.
func NewWatchdog(cfg config.ServerConfig, api http.Handler, logger *zap.Logger) http.Handler {
	h := withWatchdog(cfg.WarnDelay(), logger, standardRouter(api))
	return wrap(VariantWatchdog, cfg, h, logger)
}

func withWatchdog(after time.Duration, logger *zap.Logger, next http.Handler) http.Handler {
	if after <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		timer := time.AfterFunc(after, func() {
			logger.Warn("request approaching time budget",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("elapsed", time.Since(start)),
			)
		})
		defer timer.Stop()

		next.ServeHTTP(w, r)
	})
}
