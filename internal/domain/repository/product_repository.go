package repository

import (
	"context"

	"github.com/fullstack-game/api/internal/domain/entity"
)

// ProductFields carries the mutable subset of a product for partial
// replacement. Nil pointers mean "leave as stored".
type ProductFields struct {
	Name        *string
	Price       *float64
	Description *string
}

// ProductRepository is the gateway to the "productos" collection.
type ProductRepository interface {
	Insert(ctx context.Context, p *entity.Product) error
	FindAll(ctx context.Context) ([]entity.Product, error)
	ReplaceByID(ctx context.Context, id string, fields ProductFields) (*entity.Product, error)
	DeleteByID(ctx context.Context, id string) (*entity.Product, error)
}
