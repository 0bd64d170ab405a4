package repository

import (
	"context"

	"blogforge/internal/domain/entity"
)

// BlogRepository is the persistence contract for blogs. Search matches the
// title as a case-insensitive substring.
type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) (*entity.Blog, error)
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	GetAll(ctx context.Context, skip, limit int, search string) ([]*entity.Blog, int, error)
	GetAllByAuthor(ctx context.Context, authorID string, skip, limit int, search string) ([]*entity.Blog, int, error)
	Update(ctx context.Context, id string, b *entity.Blog) (*entity.Blog, error)
	Delete(ctx context.Context, id string) (bool, error)
}
