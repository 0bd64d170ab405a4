package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
	"blogforge/internal/domain/valueobject"
	"blogforge/pkg/mailer"
)

// EmailQueue enqueues an email job for asynchronous delivery. Satisfied by
// helpers.RabbitPublisher; nil disables signup notifications.
type EmailQueue interface {
	PublishJSON(ctx context.Context, body any) error
}

// CreateUserUseCase registers a new account. Username uniqueness and
// password strength are checked before anything is persisted; the whole
// operation runs inside one unit of work.
type CreateUserUseCase struct {
	UoW    repository.UnitOfWorkFactory
	Hasher PasswordHasher
	IDGen  IDGenerator
	Queue  EmailQueue
	// NotifyEmail receives a signup notification per registration.
	NotifyEmail string
	Logger      *logrus.Logger
}

func NewCreateUserUseCase(uow repository.UnitOfWorkFactory, hasher PasswordHasher, idGen IDGenerator, queue EmailQueue, notifyEmail string, logger *logrus.Logger) *CreateUserUseCase {
	return &CreateUserUseCase{UoW: uow, Hasher: hasher, IDGen: idGen, Queue: queue, NotifyEmail: notifyEmail, Logger: logger}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, in CreateUserInput) (*UserResponse, error) {
	var resp *UserResponse
	err := repository.RunInUnitOfWork(ctx, uc.UoW, func(uow repository.UnitOfWork) error {
		existing, err := uow.Users().GetByUsername(ctx, in.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return domainerr.UsernameExists(in.Username)
		}

		if err := valueobject.ValidatePasswordStrength(in.Password); err != nil {
			return err
		}

		hash, err := uc.Hasher.Hash(in.Password)
		if err != nil {
			return err
		}

		var user *entity.User
		user, err = entity.NewUser(uc.IDGen.Generate(), in.FirstName, in.LastName, in.Username, hash, in.Avatar, zeroTime, zeroTime)
		if err != nil {
			return err
		}

		created, err := uow.Users().Create(ctx, user)
		if err != nil {
			return err
		}
		resp = userResponse(created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.notifySignup(ctx, resp)
	return resp, nil
}

// notifySignup is fire-and-forget; delivery problems never fail the
// registration that already committed.
func (uc *CreateUserUseCase) notifySignup(ctx context.Context, u *UserResponse) {
	if uc.Queue == nil || uc.NotifyEmail == "" {
		return
	}
	job := mailer.EmailJob{
		To:      uc.NotifyEmail,
		Subject: "New user registered",
		Text:    fmt.Sprintf("User '%s' (%s %s) just signed up.", u.Username, u.FirstName, u.LastName),
	}
	if err := uc.Queue.PublishJSON(ctx, job); err != nil && uc.Logger != nil {
		uc.Logger.WithError(err).WithField("user_id", u.ID).Warn("signup notification enqueue failed")
	}
}
