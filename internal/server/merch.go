package server

import (
	"context"

	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func (s *Server) merchGroup() rpc.Group {
	return rpc.Group{
		"getAll": rpc.Query(func(ctx context.Context) ([]storage.MerchItem, error) {
			return s.storage.ListMerch(ctx), nil
		}),

		"create": rpc.Mutation(func(ctx context.Context, in storage.NewMerchItem) (*storage.MerchItem, error) {
			return s.storage.CreateMerch(ctx, in)
		}).Admin(),

		"update": rpc.Mutation(func(ctx context.Context, in merchUpdateInput) (rpc.Success, error) {
			if err := s.storage.UpdateMerch(ctx, in.ID, in.patch()); err != nil {
				return rpc.Success{}, err
			}
			return rpc.OK(), nil
		}).Admin(),

		"delete": rpc.Mutation(func(ctx context.Context, in idInput) (rpc.Success, error) {
			if err := s.storage.DeleteMerch(ctx, in.ID); err != nil {
				return rpc.Success{}, err
			}
			return rpc.OK(), nil
		}).Admin(),
	}
}
