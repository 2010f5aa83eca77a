package transport

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
)

const (
	VariantBuffered = "buffered"
	VariantStandard = "standard"
	VariantWatchdog = "watchdog"
	VariantEdge     = "edge"
)

const rpcPrefix = "/api/trpc/"

var ErrUnknownVariant = errors.New("unknown transport variant")

// New returns the adapter selected by cfg.Transport. Every variant serves the
// same routes and applies CORS, request logging and the duration budget.
func New(cfg config.ServerConfig, api http.Handler, logger *zap.Logger) (http.Handler, error) {
	switch cfg.Transport {
	case VariantStandard, "":
		return NewStandard(cfg, api, logger), nil
	case VariantWatchdog:
		return NewWatchdog(cfg, api, logger), nil
	case VariantBuffered:
		return NewBuffered(cfg, api, logger), nil
	case VariantEdge:
		return NewEdge(cfg, api, logger), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, cfg.Transport)
}

func wrap(variant string, cfg config.ServerConfig, h http.Handler, logger *zap.Logger) http.Handler {
	return withLogging(variant, logger, withCORS(withBudget(cfg.MaxDuration, h)))
}
