package application

import (
	"context"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// DeleteUserUseCase removes a user. A user may only delete themself.
type DeleteUserUseCase struct {
	UoW repository.UnitOfWorkFactory
}

func NewDeleteUserUseCase(uow repository.UnitOfWorkFactory) *DeleteUserUseCase {
	return &DeleteUserUseCase{UoW: uow}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, activeUser *entity.User, userID string) error {
	if activeUser == nil {
		return domainerr.Unauthorized("You must be authenticated to delete a user.")
	}

	return repository.RunInUnitOfWork(ctx, uc.UoW, func(uow repository.UnitOfWork) error {
		user, err := uow.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerr.NotFound("User", "user_id: "+userID)
		}
		if activeUser.ID() != userID {
			return domainerr.Unauthorized("You are not authorized to delete this user.")
		}
		_, err = uow.Users().Delete(ctx, userID)
		return err
	})
}
