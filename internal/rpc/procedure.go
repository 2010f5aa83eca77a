package rpc

import (
	"context"
	"encoding/json"
)

type ProcedureType int

const (
	TypeQuery ProcedureType = iota
	TypeMutation
)

func (t ProcedureType) String() string {
	if t == TypeMutation {
		return "mutation"
	}
	return "query"
}

type handlerFunc func(ctx context.Context, input json.RawMessage) (any, error)

// Procedure is one callable operation of a Group.
type Procedure struct {
	Type      ProcedureType
	Protected bool

	handler handlerFunc
}

// Group maps operation names to procedures, e.g. "getAll" or "create".
type Group map[string]Procedure

// Success is the result of mutations that return no entity.
type Success struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

func OK() Success {
	return Success{Success: true}
}

// Query builds an input-less read procedure.
func Query[Out any](fn func(ctx context.Context) (Out, error)) Procedure {
	return Procedure{
		Type: TypeQuery,
		handler: func(ctx context.Context, _ json.RawMessage) (any, error) {
			return fn(ctx)
		},
	}
}

// Mutation builds a write procedure whose input is decoded into In and
// validated before fn runs.
func Mutation[In, Out any](fn func(ctx context.Context, in In) (Out, error)) Procedure {
	return Procedure{
		Type: TypeMutation,
		handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			in, err := decodeInput[In](raw)
			if err != nil {
				return nil, err
			}
			return fn(ctx, in)
		},
	}
}

// Admin marks the procedure as requiring an authenticated admin.
func (p Procedure) Admin() Procedure {
	p.Protected = true
	return p
}
