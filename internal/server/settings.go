package server

import (
	"context"

	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func (s *Server) settingsGroup() rpc.Group {
	return rpc.Group{
		// Never fails: an empty or unreachable store yields the defaults.
		"get": rpc.Query(func(ctx context.Context) (storage.BankInfo, error) {
			return s.storage.GetBankInfo(ctx), nil
		}),

		"update": rpc.Mutation(func(ctx context.Context, in storage.BankInfo) (rpc.Success, error) {
			saved, err := s.storage.UpdateBankInfo(ctx, in)
			if err != nil {
				return rpc.Success{}, err
			}
			return rpc.Success{Success: true, Data: saved}, nil
		}).Admin(),
	}
}
