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

const blogColumns = "id, title, content, author_id, hero_image, created_at, updated_at"

type BlogRepository struct {
	q Querier
}

func NewBlogRepository(q Querier) *BlogRepository {
	return &BlogRepository{q: q}
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) (*entity.Blog, error) {
	var hero *string
	if b.HeroImage() != "" {
		h := b.HeroImage()
		hero = &h
	}
	_, err := r.q.Exec(ctx, `
		INSERT INTO blogs (id, title, content, author_id, hero_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, b.ID(), b.Title(), b.Content(), b.AuthorID(), hero, b.CreatedAt(), b.UpdatedAt())
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	row := r.q.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	return scanBlog(row)
}

func (r *BlogRepository) GetAll(ctx context.Context, skip, limit int, search string) ([]*entity.Blog, int, error) {
	where := ""
	args := []any{}
	if search != "" {
		where = ` WHERE title ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	return r.list(ctx, where, args, skip, limit)
}

func (r *BlogRepository) GetAllByAuthor(ctx context.Context, authorID string, skip, limit int, search string) ([]*entity.Blog, int, error) {
	where := ` WHERE author_id = $1`
	args := []any{authorID}
	if search != "" {
		where += ` AND title ILIKE $2`
		args = append(args, "%"+search+"%")
	}
	return r.list(ctx, where, args, skip, limit)
}

func (r *BlogRepository) list(ctx context.Context, where string, args []any, skip, limit int) ([]*entity.Blog, int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`SELECT %s FROM blogs%s ORDER BY created_at DESC OFFSET $%d LIMIT $%d`,
		blogColumns, where, len(args)+1, len(args)+2)
	args = append(args, skip, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	blogs := make([]*entity.Blog, 0)
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, 0, err
		}
		blogs = append(blogs, b)
	}
	return blogs, total, rows.Err()
}

func (r *BlogRepository) Update(ctx context.Context, id string, b *entity.Blog) (*entity.Blog, error) {
	var hero *string
	if b.HeroImage() != "" {
		h := b.HeroImage()
		hero = &h
	}
	res, err := r.q.Exec(ctx, `
		UPDATE blogs
		SET title = $1, content = $2, hero_image = $3, updated_at = $4
		WHERE id = $5
	`, b.Title(), b.Content(), hero, b.UpdatedAt(), id)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, domainerr.NotFound("Blog", "blog_id: "+id)
	}
	return b, nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.q.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func scanBlog(row pgx.Row) (*entity.Blog, error) {
	var (
		id, title, content, authorID string
		hero                         *string
		createdAt, updatedAt         time.Time
	)
	if err := row.Scan(&id, &title, &content, &authorID, &hero, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	h := ""
	if hero != nil {
		h = *hero
	}
	return entity.NewBlog(id, title, content, authorID, h, createdAt, updatedAt)
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
