package application

import (
	"context"

	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// GetBlogUseCase serves blog read paths. Search matches the title as a
// case-insensitive substring; the repository computes the total count
// independent of the page slice.
type GetBlogUseCase struct {
	Blogs repository.BlogRepository
}

func NewGetBlogUseCase(blogs repository.BlogRepository) *GetBlogUseCase {
	return &GetBlogUseCase{Blogs: blogs}
}

func (uc *GetBlogUseCase) GetByID(ctx context.Context, blogID string) (*BlogResponse, error) {
	blog, err := uc.Blogs.GetByID(ctx, blogID)
	if err != nil || blog == nil {
		return nil, err
	}
	return blogResponse(blog), nil
}

func (uc *GetBlogUseCase) GetAll(ctx context.Context, p Pagination) (*PaginatedResponse[*BlogResponse], error) {
	blogs, total, err := uc.Blogs.GetAll(ctx, p.Skip, p.Limit, p.Search)
	if err != nil {
		return nil, err
	}
	return paginatedBlogs(blogs, total, p), nil
}

func (uc *GetBlogUseCase) GetAllByAuthor(ctx context.Context, authorID string, p Pagination) (*PaginatedResponse[*BlogResponse], error) {
	blogs, total, err := uc.Blogs.GetAllByAuthor(ctx, authorID, p.Skip, p.Limit, p.Search)
	if err != nil {
		return nil, err
	}
	return paginatedBlogs(blogs, total, p), nil
}

func paginatedBlogs(blogs []*entity.Blog, total int, p Pagination) *PaginatedResponse[*BlogResponse] {
	items := make([]*BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		items = append(items, blogResponse(b))
	}
	return &PaginatedResponse[*BlogResponse]{Total: total, Skip: p.Skip, Limit: p.Limit, Items: items}
}
