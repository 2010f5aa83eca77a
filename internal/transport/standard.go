package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
)

func standardRouter(api http.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api", handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/health", handleHealth).Methods(http.MethodGet)
	r.PathPrefix(rpcPrefix).Handler(api)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(handleNotFound)
	return r
}

// NewStandard serves the routes through a gorilla/mux router.
func NewStandard(cfg config.ServerConfig, api http.Handler, logger *zap.Logger) http.Handler {
	return wrap(VariantStandard, cfg, standardRouter(api), logger)
}
