package server

import (
	"context"
	"time"

	"github.com/invaderrssofficial-source/invaders.final/internal/metrics"
	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
)

func metricsInterceptor(ctx context.Context, call rpc.Call, next rpc.Invoker) (any, error) {
	start := time.Now()
	res, err := next(ctx, call)

	code := "OK"
	if err != nil {
		code = string(rpc.FromError(err).Code)
	}
	metrics.ProcedureCallsTotal.WithLabelValues(call.Path, code).Inc()
	metrics.ProcedureDuration.WithLabelValues(call.Path).Observe(time.Since(start).Seconds())
	return res, err
}
