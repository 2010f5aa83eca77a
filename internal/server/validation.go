package server

import (
	"slices"

	"github.com/invaderrssofficial-source/invaders.final/internal/rpc"
	"github.com/invaderrssofficial-source/invaders.final/internal/storage"
)

func init() {
	mustRegister("money", "must be a decimal amount, optionally prefixed with MVR", func(v string) bool {
		_, err := storage.NormalizePrice(v)
		return err == nil
	})
	mustRegister("position", "must be one of: Goalkeeper, Defender, Midfielder, Forward, Substitute", func(v string) bool {
		return slices.Contains(storage.Positions, v)
	})
}

func mustRegister(tag, message string, fn func(string) bool) {
	if err := rpc.RegisterValidation(tag, message, fn); err != nil {
		panic(err)
	}
}

type idInput struct {
	ID string `json:"id" validate:"required"`
}

type statusInput struct {
	ID     string         `json:"id" validate:"required"`
	Status storage.Status `json:"status" validate:"required,oneof=pending confirmed shipped delivered cancelled"`
}

type merchUpdateInput struct {
	ID    string  `json:"id" validate:"required"`
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Price *string `json:"price" validate:"omitempty,min=1"`
	Image *string `json:"image" validate:"omitempty,min=1"`
}

func (in merchUpdateInput) patch() storage.MerchPatch {
	return storage.MerchPatch{Name: in.Name, Price: in.Price, Image: in.Image}
}

type heroUpdateInput struct {
	ID       string  `json:"id" validate:"required"`
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Position *string `json:"position" validate:"omitempty,position"`
	Number   *string `json:"number" validate:"omitempty,min=1"`
	Image    *string `json:"image" validate:"omitempty,min=1"`
}

func (in heroUpdateInput) patch() storage.HeroPatch {
	return storage.HeroPatch{Name: in.Name, Position: in.Position, Number: in.Number, Image: in.Image}
}
