package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CodeParseError          ErrorCode = "PARSE_ERROR"
	CodeBadRequest          ErrorCode = "BAD_REQUEST"
	CodeInternal            ErrorCode = "INTERNAL_SERVER_ERROR"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeMethodNotSupported  ErrorCode = "METHOD_NOT_SUPPORTED"
	CodeTimeout             ErrorCode = "TIMEOUT"
	CodeClientClosedRequest ErrorCode = "CLIENT_CLOSED_REQUEST"
)

var codes = map[ErrorCode]struct {
	jsonRPC int
	status  int
}{
	CodeParseError:          {-32700, http.StatusBadRequest},
	CodeBadRequest:          {-32600, http.StatusBadRequest},
	CodeInternal:            {-32603, http.StatusInternalServerError},
	CodeUnauthorized:        {-32001, http.StatusUnauthorized},
	CodeNotFound:            {-32004, http.StatusNotFound},
	CodeMethodNotSupported:  {-32005, http.StatusMethodNotAllowed},
	CodeTimeout:             {-32008, http.StatusRequestTimeout},
	CodeClientClosedRequest: {-32099, 499},
}

// JSONRPCCode is the numeric code placed in error envelopes.
func (c ErrorCode) JSONRPCCode() int {
	if v, ok := codes[c]; ok {
		return v.jsonRPC
	}
	return codes[CodeInternal].jsonRPC
}

func (c ErrorCode) HTTPStatus() int {
	if v, ok := codes[c]; ok {
		return v.status
	}
	return http.StatusInternalServerError
}

// Error is a procedure failure with a wire code.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func Errorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// FromError classifies any error returned by a procedure. Store messages are
// passed through unchanged.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	code := CodeInternal
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeTimeout
	case errors.Is(err, context.Canceled):
		code = CodeClientClosedRequest
	}
	return &Error{Code: code, Message: err.Error(), Cause: err}
}
