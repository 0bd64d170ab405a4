package application

import (
	"context"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// UpdateBlogUseCase applies a partial update to a post. Only the author may
// update it; the author reference itself never changes.
type UpdateBlogUseCase struct {
	UoW     repository.UnitOfWorkFactory
	Indexer *BlogIndexer
}

func NewUpdateBlogUseCase(uow repository.UnitOfWorkFactory, indexer *BlogIndexer) *UpdateBlogUseCase {
	return &UpdateBlogUseCase{UoW: uow, Indexer: indexer}
}

func (uc *UpdateBlogUseCase) Execute(ctx context.Context, currentUser *entity.User, blogID string, in UpdateBlogInput) (*BlogResponse, error) {
	if currentUser == nil {
		return nil, domainerr.Unauthorized("You must be authenticated to update a blog.")
	}

	var resp *BlogResponse
	var updated *entity.Blog
	err := repository.RunInUnitOfWork(ctx, uc.UoW, func(uow repository.UnitOfWork) error {
		blog, err := uow.Blogs().GetByID(ctx, blogID)
		if err != nil {
			return err
		}
		if blog == nil {
			return domainerr.NotFound("Blog", "blog_id: "+blogID)
		}
		if currentUser.ID() != blog.AuthorID() {
			return domainerr.Unauthorized("You are not authorized to update this blog.")
		}

		if in.Title != nil {
			if err := blog.SetTitle(*in.Title); err != nil {
				return err
			}
		}
		if in.Content != nil {
			if err := blog.SetContent(*in.Content); err != nil {
				return err
			}
		}
		if in.HeroImage != nil {
			blog.SetHeroImage(*in.HeroImage)
		}

		updated, err = uow.Blogs().Update(ctx, blogID, blog)
		if err != nil {
			return err
		}
		resp = blogResponse(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = uc.Indexer.Index(ctx, updated)
	return resp, nil
}
