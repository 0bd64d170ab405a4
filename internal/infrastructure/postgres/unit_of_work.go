package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"blogforge/internal/domain/repository"
)

// UnitOfWork runs user and blog repositories over a single pgx transaction.
type UnitOfWork struct {
	tx    pgx.Tx
	users *UserRepository
	blogs *BlogRepository
}

func (u *UnitOfWork) Users() repository.UserRepository { return u.users }
func (u *UnitOfWork) Blogs() repository.BlogRepository { return u.blogs }

func (u *UnitOfWork) Commit(ctx context.Context) error   { return u.tx.Commit(ctx) }
func (u *UnitOfWork) Rollback(ctx context.Context) error { return u.tx.Rollback(ctx) }

type UnitOfWorkFactory struct {
	pool *pgxpool.Pool
}

func NewUnitOfWorkFactory(pool *pgxpool.Pool) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{pool: pool}
}

func (f *UnitOfWorkFactory) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	tx, err := f.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{
		tx:    tx,
		users: NewUserRepository(tx),
		blogs: NewBlogRepository(tx),
	}, nil
}

var (
	_ repository.UnitOfWork        = (*UnitOfWork)(nil)
	_ repository.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)
