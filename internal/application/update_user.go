package application

import (
	"context"
	"fmt"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// UpdateUserUseCase applies a partial update to a user's profile. Only the
// caller's own record may be updated; fields left unset are untouched.
type UpdateUserUseCase struct {
	UoW repository.UnitOfWorkFactory
}

func NewUpdateUserUseCase(uow repository.UnitOfWorkFactory) *UpdateUserUseCase {
	return &UpdateUserUseCase{UoW: uow}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, activeUser *entity.User, userID string, in UpdateUserInput) (*UserResponse, error) {
	if activeUser == nil {
		return nil, domainerr.Unauthorized("You must be authenticated to update a user.")
	}

	var resp *UserResponse
	err := repository.RunInUnitOfWork(ctx, uc.UoW, func(uow repository.UnitOfWork) error {
		user, err := uow.Users().GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerr.NotFound("User", "user_id: "+userID)
		}
		if activeUser.ID() != userID {
			return domainerr.Unauthorized("You are not authorized to update this user.")
		}

		if in.Username != nil {
			taken, err := uow.Users().GetByUsername(ctx, *in.Username)
			if err != nil {
				return err
			}
			if taken != nil && taken.ID() != userID {
				return domainerr.InvalidData(fmt.Sprintf("The username '%s' is already taken.", *in.Username))
			}
		}

		if err := applyUserUpdate(user, in); err != nil {
			return err
		}

		updated, err := uow.Users().Update(ctx, userID, user)
		if err != nil {
			return err
		}
		resp = userResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// applyUserUpdate mutates only the fields explicitly present, letting the
// entity setters enforce the field rules and stamp UpdatedAt.
func applyUserUpdate(user *entity.User, in UpdateUserInput) error {
	if in.FirstName != nil {
		if err := user.SetFirstName(*in.FirstName); err != nil {
			return err
		}
	}
	if in.LastName != nil {
		if err := user.SetLastName(*in.LastName); err != nil {
			return err
		}
	}
	if in.Username != nil {
		if err := user.SetUsername(*in.Username); err != nil {
			return err
		}
	}
	if in.Avatar != nil {
		user.SetAvatar(*in.Avatar)
	}
	return nil
}
