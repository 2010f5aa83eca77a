package rpc

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// Context is the per-request data available to every procedure.
type Context struct {
	RequestID string
	Transport string
	Remote    string
	// Admin is the authenticated username, empty for anonymous callers.
	Admin   string
	// AuthErr is set when credentials were sent but could not be checked.
	// Only protected procedures fail on it.
	AuthErr error
	Started time.Time
}

type ctxKey struct{}

func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns nil outside of a dispatched call.
func FromContext(ctx context.Context) *Context {
	rc, _ := ctx.Value(ctxKey{}).(*Context)
	return rc
}

type ContextFactory func(r *http.Request) (*Context, error)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (bool, error)
}

// NewContextFactory checks Basic credentials when present. Bad credentials
// leave the caller anonymous; a failed lookup does too, with AuthErr set.
func NewContextFactory(transport string, auth Authenticator) ContextFactory {
	return func(r *http.Request) (*Context, error) {
		rc := &Context{
			RequestID: r.Header.Get(RequestIDHeader),
			Transport: transport,
			Remote:    r.RemoteAddr,
			Started:   time.Now(),
		}
		if rc.RequestID == "" {
			rc.RequestID = uuid.NewString()
		}

		username, password, ok := r.BasicAuth()
		if !ok || auth == nil {
			return rc, nil
		}

		valid, err := auth.Authenticate(r.Context(), username, password)
		if err != nil {
			rc.AuthErr = fmt.Errorf("failed to verify credentials: %w", err)
			return rc, nil
		}
		if valid {
			rc.Admin = username
		}
		return rc, nil
	}
}
