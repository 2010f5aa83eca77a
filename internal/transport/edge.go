package transport

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
)

// NewEdge uses ServeMux method patterns and answers anything unmatched with
// a JSON 404.
func NewEdge(cfg config.ServerConfig, api http.Handler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api", handleStatus)
	mux.HandleFunc("GET /api/health", handleHealth)
	mux.Handle("GET "+rpcPrefix, api)
	mux.Handle("POST "+rpcPrefix, api)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("/", handleNotFound)

	return wrap(VariantEdge, cfg, mux, logger)
}
