package application

import (
	"context"

	"blogforge/internal/domain/repository"
)

// GetUserUseCase serves read paths directly from the repository; no unit of
// work is needed for queries. Lookups return (nil, nil) when absent.
type GetUserUseCase struct {
	Users repository.UserRepository
}

func NewGetUserUseCase(users repository.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{Users: users}
}

func (uc *GetUserUseCase) GetByID(ctx context.Context, userID string) (*UserResponse, error) {
	user, err := uc.Users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return nil, err
	}
	return userResponse(user), nil
}

func (uc *GetUserUseCase) GetByUsername(ctx context.Context, username string) (*UserResponse, error) {
	user, err := uc.Users.GetByUsername(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}
	return userResponse(user), nil
}

// GetAll returns a page of users. Search matches username, first name or
// last name as a case-insensitive substring.
func (uc *GetUserUseCase) GetAll(ctx context.Context, p Pagination) (*PaginatedResponse[*UserResponse], error) {
	users, total, err := uc.Users.GetAll(ctx, p.Skip, p.Limit, p.Search)
	if err != nil {
		return nil, err
	}
	items := make([]*UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, userResponse(u))
	}
	return &PaginatedResponse[*UserResponse]{Total: total, Skip: p.Skip, Limit: p.Limit, Items: items}, nil
}
