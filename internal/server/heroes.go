package server

import (
	"context"

	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func (s *Server) heroesGroup() rpc.Group {
	return rpc.Group{
		"getAll": rpc.Query(func(ctx context.Context) ([]storage.Hero, error) {
			return s.storage.ListHeroes(ctx), nil
		}),

		"create": rpc.Mutation(func(ctx context.Context, in storage.NewHero) (*storage.Hero, error) {
			return s.storage.CreateHero(ctx, in)
		}).Admin(),

		"update": rpc.Mutation(func(ctx context.Context, in heroUpdateInput) (rpc.Success, error) {
			if err := s.storage.UpdateHero(ctx, in.ID, in.patch()); err != nil {
				return rpc.Success{}, err
			}
			return rpc.OK(), nil
		}).Admin(),

		"delete": rpc.Mutation(func(ctx context.Context, in idInput) (rpc.Success, error) {
			if err := s.storage.DeleteHero(ctx, in.ID); err != nil {
				return rpc.Success{}, err
			}
			return rpc.OK(), nil
		}).Admin(),
	}
}
