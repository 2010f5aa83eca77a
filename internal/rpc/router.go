package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Call describes a single procedure invocation as seen by interceptors.
type Call struct {
	Path      string
	Type      ProcedureType
	Input     json.RawMessage
	Protected bool
}

type Invoker func(ctx context.Context, call Call) (any, error)

// Interceptor wraps every invocation. It must call next to proceed.
type Interceptor func(ctx context.Context, call Call, next Invoker) (any, error)

type Option func(*Router)

// WithAuthRequired toggles the admin check on protected procedures.
func WithAuthRequired(required bool) Option {
	return func(r *Router) {
		r.authRequired = required
	}
}

func WithInterceptors(interceptors ...Interceptor) Option {
	return func(r *Router) {
		r.interceptors = append(r.interceptors, interceptors...)
	}
}

// Router aggregates procedure groups under dotted paths.
type Router struct {
	procedures   map[string]Procedure
	interceptors []Interceptor
	authRequired bool
}

func NewRouter(opts ...Option) *Router {
	r := &Router{
		procedures:   make(map[string]Procedure),
		authRequired: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Merge registers every procedure of group under "<name>.<op>". Registering
// the same path twice panics.
func (r *Router) Merge(name string, group Group) *Router {
	for op, p := range group {
		path := name + "." + op
		if _, exists := r.procedures[path]; exists {
			panic(fmt.Sprintf("rpc: procedure %q registered twice", path))
		}
		if p.handler == nil {
			panic(fmt.Sprintf("rpc: procedure %q has no handler", path))
		}
		r.procedures[path] = p
	}
	return r
}

// Use appends interceptors. The first one added is the outermost.
func (r *Router) Use(interceptors ...Interceptor) {
	r.interceptors = append(r.interceptors, interceptors...)
}

func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.procedures))
	for p := range r.procedures {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func (r *Router) Lookup(path string) (Procedure, bool) {
	p, ok := r.procedures[path]
	return p, ok
}

// Invoke dispatches one call. The result is whatever the procedure returned;
// errors are left for FromError to classify.
func (r *Router) Invoke(ctx context.Context, typ ProcedureType, path string, input json.RawMessage) (any, error) {
	p, ok := r.procedures[path]
	if !ok {
		return nil, Errorf(CodeNotFound, "No %q-procedure on path %q", typ.String(), path)
	}
	if p.Type != typ {
		return nil, Errorf(CodeMethodNotSupported, "Procedure %q is a %s and cannot be called as a %s", path, p.Type, typ)
	}

	call := Call{Path: path, Type: typ, Input: input, Protected: p.Protected}

	invoke := func(ctx context.Context, call Call) (any, error) {
		if call.Protected && r.authRequired {
			rc := FromContext(ctx)
			if rc != nil && rc.Admin == "" && rc.AuthErr != nil {
				return nil, &Error{Code: CodeUnauthorized, Message: "admin credentials could not be verified", Cause: rc.AuthErr}
			}
			if rc == nil || rc.Admin == "" {
				return nil, Errorf(CodeUnauthorized, "admin credentials required")
			}
		}
		return p.handler(ctx, call.Input)
	}

	for i := len(r.interceptors) - 1; i >= 0; i-- {
		interceptor, next := r.interceptors[i], invoke
		invoke = func(ctx context.Context, call Call) (any, error) {
			return interceptor(ctx, call, next)
		}
	}

	return invoke(ctx, call)
}
