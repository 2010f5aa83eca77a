package server

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/invaderrssofficial-source/invaders.final/internal/repository"
	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

type AuditLogEntry = repository.AuditLogPayload

// AuditSink persists a batch of audit entries for later publication.
type AuditSink interface {
	WriteAuditBatch(ctx context.Context, topic string, entries []repository.AuditLogPayload) error
}

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

func (s *Server) auditInterceptor(ctx context.Context, call rpc.Call, next rpc.Invoker) (any, error) {
	if call.Type != rpc.TypeMutation {
		return next(ctx, call)
	}

	start := time.Now()
	res, err := next(ctx, call)
	s.audit.LogEntry(ctx, newAuditEntry(ctx, call, res, err, time.Since(start)))
	return res, err
}

func newAuditEntry(ctx context.Context, call rpc.Call, res any, err error, elapsed time.Duration) AuditLogEntry {
	entity, action, _ := strings.Cut(call.Path, ".")
	entry := AuditLogEntry{
		Timestamp:  time.Now().UTC(),
		Procedure:  call.Path,
		EntityType: entity,
		EntityID:   entityID(call.Input, res),
		Action:     action,
		Outcome:    outcomeSuccess,
		DurationMS: elapsed.Milliseconds(),
	}

	if rc := rpc.FromContext(ctx); rc != nil {
		entry.RequestID = rc.RequestID
		entry.Transport = rc.Transport
		entry.UserID = rc.Admin
	}
	if len(call.Input) > 0 && json.Valid(call.Input) {
		entry.Input = call.Input
	}
	if err != nil {
		entry.Outcome = outcomeError
		entry.Error = err.Error()
	}
	return entry
}

// entityID prefers the id of a created record, then the "id" of the input.
func entityID(input json.RawMessage, res any) string {
	switch v := res.(type) {
	case *storage.Order:
		if v != nil {
			return v.ID
		}
	case *storage.MerchItem:
		if v != nil {
			return v.ID
		}
	case *storage.Hero:
		if v != nil {
			return v.ID
		}
	}

	var in struct {
		ID string `json:"id"`
	}
	if len(input) > 0 {
		_ = json.Unmarshal(input, &in)
	}
	return in.ID
}
