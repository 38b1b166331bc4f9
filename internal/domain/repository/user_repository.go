package repository

import (
	"context"

	"github.com/fullstack-game/api/internal/domain/entity"
)

// UserFields carries the mutable subset of a user for partial replacement.
// Nil pointers mean "leave as stored".
type UserFields struct {
	Name  *string
	Email *string
}

// UserRepository is the gateway to the "usuarios" collection.
type UserRepository interface {
	Insert(ctx context.Context, u *entity.User) error
	FindAll(ctx context.Context) ([]entity.User, error)
	FindByEmail(ctx context.Context, correo string) (*entity.User, error)
	ReplaceByID(ctx context.Context, id string, fields UserFields) (*entity.User, error)
	DeleteByID(ctx context.Context, id string) (*entity.User, error)
}
