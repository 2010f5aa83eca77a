package server

import (
	"context"
	"errors"

	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func (s *Server) ordersGroup() rpc.Group {
	return rpc.Group{
		"getAll": rpc.Query(func(ctx context.Context) ([]storage.Order, error) {
			return s.storage.ListOrders(ctx), nil
		}).Admin(),

		"create": rpc.Mutation(func(ctx context.Context, in storage.NewOrder) (*storage.Order, error) {
			order, err := s.storage.CreateOrder(ctx, in)
			if errors.Is(err, storage.ErrInvalidPrice) {
				return nil, &rpc.Error{Code: rpc.CodeBadRequest, Message: err.Error(), Cause: err}
			}
			return order, err
		}),

		"updateStatus": rpc.Mutation(func(ctx context.Context, in statusInput) (rpc.Success, error) {
			if err := s.storage.UpdateOrderStatus(ctx, in.ID, in.Status); err != nil {
				return rpc.Success{}, err
			}
			return rpc.OK(), nil
		}).Admin(),

		"delete": rpc.Mutation(func(ctx context.Context, in idInput) (rpc.Success, error) {
			if err := s.storage.DeleteOrder(ctx, in.ID); err != nil {
				return rpc.Success{}, err
			}
			return rpc.OK(), nil
		}).Admin(),
	}
}
