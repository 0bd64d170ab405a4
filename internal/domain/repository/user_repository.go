// Package repository defines the persistence contracts consumed by the use
// cases. Storage adapters implement them; the domain never imports pgx.
package repository

import (
	"context"

	"blogforge/internal/domain/entity"
)

// UserRepository is the persistence contract for users. Lookups return
// (nil, nil) on a miss; absence is a result, not an error, and the caller
// decides whether it is fatal.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// GetAll applies an optional case-insensitive substring search over
	// username, first name and last name, then returns the page slice and
	// the total match count independent of skip/limit.
	GetAll(ctx context.Context, skip, limit int, search string) ([]*entity.User, int, error)
	Update(ctx context.Context, id string, u *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
