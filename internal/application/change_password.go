package application

import (
	"context"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
	"blogforge/internal/domain/valueobject"
)

// ChangePasswordUseCase rotates a user's password after verifying the old
// one. Check order is fixed: identity, existence, ownership, confirmation
// match, old-password verify, strength.
type ChangePasswordUseCase struct {
	UoW    repository.UnitOfWorkFactory
	Hasher PasswordHasher
}

func NewChangePasswordUseCase(uow repository.UnitOfWorkFactory, hasher PasswordHasher) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{UoW: uow, Hasher: hasher}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, activeUser *entity.User, userID string, in ChangePasswordInput) (*UserResponse, error) {
	if activeUser == nil {
		return nil, domainerr.Unauthorized("You must be authenticated to change a password.")
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
			return domainerr.Unauthorized("You are not authorized to change this user's password.")
		}
		if in.ConfirmNewPassword != in.NewPassword {
			return domainerr.InvalidData("New password and confirmation do not match.")
		}
		if !uc.Hasher.Verify(in.OldPassword, user.PasswordHash()) {
			return domainerr.InvalidData("Old password is incorrect.")
		}
		if err := valueobject.ValidatePasswordStrength(in.NewPassword); err != nil {
			return err
		}

		hash, err := uc.Hasher.Hash(in.NewPassword)
		if err != nil {
			return err
		}
		user.SetPasswordHash(hash)

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
