package repository

import "context"

// UnitOfWork groups repository operations under one atomic commit/rollback
// boundary. Each use-case invocation gets its own unit of work.
type UnitOfWork interface {
	Users() UserRepository
	Blogs() BlogRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UnitOfWorkFactory opens a fresh transactional scope.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// RunInUnitOfWork executes fn inside a unit of work: commit when fn returns
// nil, rollback otherwise. The rollback error is discarded; the original
// failure is what propagates.
func RunInUnitOfWork(ctx context.Context, factory UnitOfWorkFactory, fn func(uow UnitOfWork) error) error {
	uow, err := factory.Begin(ctx)
	if err != nil {
		return err
	}
	if err := fn(uow); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}
	return uow.Commit(ctx)
}
