package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type envelope struct {
	Result *result     `json:"result,omitempty"`
	Error  *errorShape `json:"error,omitempty"`
}

type result struct {
	Data any `json:"data"`
}

type errorShape struct {
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Data    errorData `json:"data"`
}

type errorData struct {
	Code       ErrorCode `json:"code"`
	HTTPStatus int       `json:"httpStatus"`
	Path       string    `json:"path,omitempty"`
}

type outcome struct {
	data any
	err  *Error
}

// Handler serves the router over the tRPC HTTP wire format: queries are GET
// with ?input=, mutations are POST with a JSON body, and ?batch=1 accepts
// comma-separated paths with inputs keyed by call index.
type Handler struct {
	router  *Router
	factory ContextFactory
	prefix  string
	logger  *zap.Logger
}

func NewHandler(router *Router, factory ContextFactory, prefix string, logger *zap.Logger) *Handler {
	if factory == nil {
		factory = NewContextFactory("", nil)
	}
	return &Handler{
		router:  router,
		factory: factory,
		prefix:  prefix,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, h.prefix)
	batch := r.URL.Query().Get("batch") == "1"
	paths := []string{path}
	if batch {
		paths = strings.Split(path, ",")
	}
	outcomes := make([]outcome, len(paths))

	var typ ProcedureType
	switch r.Method {
	case http.MethodGet:
		typ = TypeQuery
	case http.MethodPost:
		typ = TypeMutation
	default:
		fail(outcomes, Errorf(CodeMethodNotSupported, "Unsupported HTTP method %s", r.Method))
		h.write(w, paths, outcomes, batch)
		return
	}

	inputs, perr := readInputs(r, batch, len(paths))
	if perr != nil {
		fail(outcomes, perr)
		h.write(w, paths, outcomes, batch)
		return
	}

	rc, err := h.factory(r)
	if err != nil {
		h.logger.Error("failed to build call context", zap.Error(err))
		fail(outcomes, FromError(err))
		h.write(w, paths, outcomes, batch)
		return
	}
	if rc.AuthErr != nil {
		h.logger.Warn("credential lookup failed", zap.String("request_id", rc.RequestID), zap.Error(rc.AuthErr))
	}
	ctx := WithContext(r.Context(), rc)

	for i, p := range paths {
		data, err := h.router.Invoke(ctx, typ, p, inputs[i])
		if err != nil {
			rpcErr := FromError(err)
			h.logFailure(rc, p, rpcErr)
			outcomes[i] = outcome{err: rpcErr}
			continue
		}
		outcomes[i] = outcome{data: data}
	}

	h.write(w, paths, outcomes, batch)
}

func fail(outcomes []outcome, err *Error) {
	for i := range outcomes {
		outcomes[i] = outcome{err: err}
	}
}

func (h *Handler) logFailure(rc *Context, path string, err *Error) {
	fields := []zap.Field{
		zap.String("rpc_path", path),
		zap.String("request_id", rc.RequestID),
		zap.String("code", string(err.Code)),
		zap.String("message", err.Message),
	}
	switch err.Code {
	case CodeInternal, CodeTimeout:
		h.logger.Error("procedure failed", fields...)
	default:
		h.logger.Debug("procedure rejected", fields...)
	}
}

func readInputs(r *http.Request, batch bool, n int) ([]json.RawMessage, *Error) {
	var raw []byte
	if r.Method == http.MethodGet {
		raw = []byte(r.URL.Query().Get("input"))
	} else if r.Body != nil {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil {
			return nil, &Error{Code: CodeParseError, Message: "failed to read request body", Cause: err}
		}
		if len(body) > maxBodyBytes {
			return nil, Errorf(CodeBadRequest, "request body exceeds %d bytes", maxBodyBytes)
		}
		raw = body
	}

	inputs := make([]json.RawMessage, n)
	if len(bytes.TrimSpace(raw)) == 0 {
		return inputs, nil
	}
	if !json.Valid(raw) {
		return nil, Errorf(CodeParseError, "input is not valid JSON")
	}
	if !batch {
		inputs[0] = raw
		return inputs, nil
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keyed); err != nil {
		return nil, &Error{Code: CodeBadRequest, Message: "batch input must be an object keyed by call index", Cause: err}
	}
	for i := range inputs {
		inputs[i] = keyed[strconv.Itoa(i)]
	}
	return inputs, nil
}

func (h *Handler) write(w http.ResponseWriter, paths []string, outcomes []outcome, batch bool) {
	bodies := make([]json.RawMessage, len(outcomes))
	status := 0
	for i, o := range outcomes {
		raw, st := h.encode(paths[i], o)
		bodies[i] = raw
		switch {
		case status == 0:
			status = st
		case status != st:
			status = http.StatusMultiStatus
		}
	}

	var body []byte
	if batch {
		body, _ = json.Marshal(bodies)
	} else {
		body = bodies[0]
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("failed to write rpc response", zap.Error(err))
	}
}

func (h *Handler) encode(path string, o outcome) (json.RawMessage, int) {
	if o.err == nil {
		raw, err := json.Marshal(envelope{Result: &result{Data: o.data}})
		if err == nil {
			return raw, http.StatusOK
		}
		h.logger.Error("failed to encode result", zap.String("rpc_path", path), zap.Error(err))
		o.err = &Error{Code: CodeInternal, Message: "failed to encode result", Cause: err}
	}

	raw, _ := json.Marshal(envelope{Error: &errorShape{
		Message: o.err.Message,
		Code:    o.err.Code.JSONRPCCode(),
		Data: errorData{
			Code:       o.err.Code,
			HTTPStatus: o.err.Code.HTTPStatus(),
			Path:       path,
		},
	}})
	return raw, o.err.Code.HTTPStatus()
}
