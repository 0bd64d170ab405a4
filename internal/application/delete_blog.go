package application

import (
	"context"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// DeleteBlogUseCase removes a post after verifying author ownership.
type DeleteBlogUseCase struct {
	UoW     repository.UnitOfWorkFactory
	Indexer *BlogIndexer
}

func NewDeleteBlogUseCase(uow repository.UnitOfWorkFactory, indexer *BlogIndexer) *DeleteBlogUseCase {
	return &DeleteBlogUseCase{UoW: uow, Indexer: indexer}
}

func (uc *DeleteBlogUseCase) Execute(ctx context.Context, currentUser *entity.User, blogID string) error {
	if currentUser == nil {
		return domainerr.Unauthorized("You must be authenticated to delete a blog.")
	}

	err := repository.RunInUnitOfWork(ctx, uc.UoW, func(uow repository.UnitOfWork) error {
		blog, err := uow.Blogs().GetByID(ctx, blogID)
		if err != nil {
			return err
		}
		if blog == nil {
			return domainerr.NotFound("Blog", "blog_id: "+blogID)
		}
		if currentUser.ID() != blog.AuthorID() {
			return domainerr.Unauthorized("You are not authorized to delete this blog.")
		}
		_, err = uow.Blogs().Delete(ctx, blogID)
		return err
	})
	if err != nil {
		return err
	}

	_ = uc.Indexer.Remove(ctx, blogID)
	return nil
}
