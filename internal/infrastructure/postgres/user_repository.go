package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

const userColumns = "id, first_name, last_name, username, password_hash, avatar, created_at, updated_at"

type UserRepository struct {
	q Querier
}

func NewUserRepository(q Querier) *UserRepository {
	return &UserRepository{q: q}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	var avatar *string
	if u.Avatar() != "" {
		a := u.Avatar()
		avatar = &a
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, username, password_hash, avatar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID(), u.FirstName(), u.LastName(), u.Username(), u.PasswordHash(), avatar, u.CreatedAt(), u.UpdatedAt())
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return scanUser(row)
}

func (r *UserRepository) GetAll(ctx context.Context, skip, limit int, search string) ([]*entity.User, int, error) {
	where := ""
	args := []any{}
	if search != "" {
		where = ` WHERE username ILIKE $1 OR first_name ILIKE $1 OR last_name ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		userColumns, where, len(args)+1, len(args)+2)
	args = append(args, skip, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id string, u *entity.User) (*entity.User, error) {
	var avatar *string
	if u.Avatar() != "" {
		a := u.Avatar()
		avatar = &a
	}
	res, err := r.q.Exec(ctx, `
		UPDATE users
		SET first_name = $1, last_name = $2, username = $3, password_hash = $4, avatar = $5, updated_at = $6
		WHERE id = $7
	`, u.FirstName(), u.LastName(), u.Username(), u.PasswordHash(), avatar, u.UpdatedAt(), id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domainerr.NotFound("User", "user_id: "+id)
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, firstName, lastName, username, passwordHash string
		avatar                                          *string
		createdAt, updatedAt                            time.Time
	)
	if err := row.Scan(&id, &firstName, &lastName, &username, &passwordHash, &avatar, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	av := ""
	if avatar != nil {
		av = *avatar
	}
	return entity.NewUser(id, firstName, lastName, username, passwordHash, av, createdAt, updatedAt)
}

var _ repository.UserRepository = (*UserRepository)(nil)
