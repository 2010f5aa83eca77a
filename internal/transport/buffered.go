package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/invaderrssofficial-source/invaders.final/internal/config"
)

// NewBuffered renders every API response into memory before sending it, so
// a panic or a non-JSON body turns into a clean 500 envelope.
func NewBuffered(cfg config.ServerConfig, api http.Handler, logger *zap.Logger) http.Handler {
	routes := http.NewServeMux()
	routes.HandleFunc("/api", handleStatus)
	routes.HandleFunc("/api/health", handleHealth)
	routes.Handle(rpcPrefix, api)
	routes.HandleFunc("/", handleNotFound)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", &bridge{next: routes, logger: logger})

	return wrap(VariantBuffered, cfg, mux, logger)
}

type bridge struct {
	next   http.Handler
	logger *zap.Logger
}

func (b *bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	buf := newBufferedWriter()

	if err := b.render(buf, r); err != nil {
		b.logger.Error("buffered response failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		respondJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Internal server error",
			"message": err.Error(),
		})
		return
	}

	for k, v := range buf.Header() {
		w.Header()[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(buf.GetStatusCode())
	_, _ = w.Write(buf.GetBody())
}

func (b *bridge) render(buf *bufferedWriter, r *http.Request) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("handler panicked: %v", p)
		}
	}()

	b.next.ServeHTTP(buf, r)

	if body := buf.GetBody(); len(body) > 0 && !json.Valid(body) {
		return fmt.Errorf("response for %s is not valid JSON", r.URL.Path)
	}
	return nil
}
