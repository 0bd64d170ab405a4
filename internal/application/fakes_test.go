package application

import (
	"context"
	"fmt"
	"strings"

	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// In-memory doubles for the domain interfaces. They keep insertion order so
// pagination assertions are deterministic.

type memUserRepo struct {
	users []*entity.User
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.users = append(r.users, u)
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetAll(_ context.Context, skip, limit int, search string) ([]*entity.User, int, error) {
	matched := make([]*entity.User, 0, len(r.users))
	needle := strings.ToLower(search)
	for _, u := range r.users {
		if search == "" ||
			strings.Contains(strings.ToLower(u.Username()), needle) ||
			strings.Contains(strings.ToLower(u.FirstName()), needle) ||
			strings.Contains(strings.ToLower(u.LastName()), needle) {
			matched = append(matched, u)
		}
	}
	return page(matched, skip, limit), len(matched), nil
}

func (r *memUserRepo) Update(_ context.Context, id string, u *entity.User) (*entity.User, error) {
	for i, existing := range r.users {
		if existing.ID() == id {
			r.users[i] = u
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, u := range r.users {
		if u.ID() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memBlogRepo struct {
	blogs []*entity.Blog
}

func (r *memBlogRepo) Create(_ context.Context, b *entity.Blog) (*entity.Blog, error) {
	r.blogs = append(r.blogs, b)
	return b, nil
}

func (r *memBlogRepo) GetByID(_ context.Context, id string) (*entity.Blog, error) {
	for _, b := range r.blogs {
		if b.ID() == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBlogRepo) GetAll(_ context.Context, skip, limit int, search string) ([]*entity.Blog, int, error) {
	return r.filtered(skip, limit, search, "")
}

func (r *memBlogRepo) GetAllByAuthor(_ context.Context, authorID string, skip, limit int, search string) ([]*entity.Blog, int, error) {
	return r.filtered(skip, limit, search, authorID)
}

func (r *memBlogRepo) filtered(skip, limit int, search, authorID string) ([]*entity.Blog, int, error) {
	matched := make([]*entity.Blog, 0, len(r.blogs))
	needle := strings.ToLower(search)
	for _, b := range r.blogs {
		if authorID != "" && b.AuthorID() != authorID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(b.Title()), needle) {
			continue
		}
		matched = append(matched, b)
	}
	return page(matched, skip, limit), len(matched), nil
}

func (r *memBlogRepo) Update(_ context.Context, id string, b *entity.Blog) (*entity.Blog, error) {
	for i, existing := range r.blogs {
		if existing.ID() == id {
			r.blogs[i] = b
			return b, nil
		}
	}
	return nil, nil
}

func (r *memBlogRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, b := range r.blogs {
		if b.ID() == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// memUoW applies writes directly to the shared repositories; commit and
// rollback are no-ops. Good enough for exercising use-case logic.
type memUoW struct {
	users *memUserRepo
	blogs *memBlogRepo
}

func (u *memUoW) Users() repository.UserRepository { return u.users }
func (u *memUoW) Blogs() repository.BlogRepository { return u.blogs }
func (u *memUoW) Commit(context.Context) error     { return nil }
func (u *memUoW) Rollback(context.Context) error   { return nil }

type memUoWFactory struct {
	uow *memUoW
}

func newMemFactory() *memUoWFactory {
	return &memUoWFactory{uow: &memUoW{users: &memUserRepo{}, blogs: &memBlogRepo{}}}
}

func (f *memUoWFactory) Begin(context.Context) (repository.UnitOfWork, error) {
	return f.uow, nil
}

// fakeHasher makes hashes reversible for assertions.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(plain, hash string) bool    { return hash == "hashed:"+plain }

type seqIDGen struct {
	n int
}

func (g *seqIDGen) Generate() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

type memQueue struct {
	published []any
}

func (q *memQueue) PublishJSON(_ context.Context, body any) error {
	q.published = append(q.published, body)
	return nil
}

func mustUser(f *memUoWFactory, id, firstName, lastName, username, password string) *entity.User {
	u, err := entity.NewUser(id, firstName, lastName, username, "hashed:"+password, "", zeroTime, zeroTime)
	if err != nil {
		panic(err)
	}
	f.uow.users.users = append(f.uow.users.users, u)
	return u
}

func mustBlog(f *memUoWFactory, id, title, content, authorID string) *entity.Blog {
	b, err := entity.NewBlog(id, title, content, authorID, "", zeroTime, zeroTime)
	if err != nil {
		panic(err)
	}
	f.uow.blogs.blogs = append(f.uow.blogs.blogs, b)
	return b
}
