package application

import (
	"context"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
)

// CreateBlogUseCase publishes a new post. The author must exist before any
// blog row is written; title/content validation happens in the entity
// constructor.
type CreateBlogUseCase struct {
	UoW     repository.UnitOfWorkFactory
	IDGen   IDGenerator
	Indexer *BlogIndexer
}

func NewCreateBlogUseCase(uow repository.UnitOfWorkFactory, idGen IDGenerator, indexer *BlogIndexer) *CreateBlogUseCase {
	return &CreateBlogUseCase{UoW: uow, IDGen: idGen, Indexer: indexer}
}

// Execute creates the blog. With withAuthor set, the response embeds the
// author's public profile.
func (uc *CreateBlogUseCase) Execute(ctx context.Context, in CreateBlogInput, withAuthor bool) (*BlogResponse, error) {
	var resp *BlogResponse
	var created *entity.Blog
	err := repository.RunInUnitOfWork(ctx, uc.UoW, func(uow repository.UnitOfWork) error {
		author, err := uow.Users().GetByID(ctx, in.AuthorID)
		if err != nil {
			return err
		}
		if author == nil {
			return domainerr.NotFound("User", "user_id: "+in.AuthorID)
		}

		blog, err := entity.NewBlog(uc.IDGen.Generate(), in.Title, in.Content, in.AuthorID, in.HeroImage, zeroTime, zeroTime)
		if err != nil {
			return err
		}

		created, err = uow.Blogs().Create(ctx, blog)
		if err != nil {
			return err
		}
		resp = blogResponse(created)
		if withAuthor {
			resp.Author = basicUser(author)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = uc.Indexer.Index(ctx, created)
	return resp, nil
}
