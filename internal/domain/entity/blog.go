package entity

import (
	"time"

	"blogforge/internal/domain/valueobject"
)

// Blog is a post written by a user. The author reference is immutable after
// construction; title and content are re-validated on every mutation.
type Blog struct {
	id        string
	title     valueobject.Title
	content   valueobject.Content
	authorID  string
	heroImage string
	createdAt time.Time
	updatedAt time.Time
}

// NewBlog constructs a blog, validating title and content. Zero timestamps
// default to the current UTC time.
func NewBlog(id, title, content, authorID, heroImage string, createdAt, updatedAt time.Time) (*Blog, error) {
	t, err := valueobject.NewTitle(title)
	if err != nil {
		return nil, err
	}
	c, err := valueobject.NewContent(content)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	if createdAt.IsZero() {
		createdAt = now
	}
	if updatedAt.IsZero() {
		updatedAt = now
	}
	return &Blog{
		id:        id,
		title:     t,
		content:   c,
		authorID:  authorID,
		heroImage: heroImage,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (b *Blog) ID() string           { return b.id }
func (b *Blog) Title() string        { return b.title.String() }
func (b *Blog) Content() string      { return b.content.String() }
func (b *Blog) AuthorID() string     { return b.authorID }
func (b *Blog) HeroImage() string    { return b.heroImage }
func (b *Blog) CreatedAt() time.Time { return b.createdAt }
func (b *Blog) UpdatedAt() time.Time { return b.updatedAt }

func (b *Blog) SetTitle(value string) error {
	t, err := valueobject.NewTitle(value)
	if err != nil {
		return err
	}
	b.title = t
	b.touch()
	return nil
}

func (b *Blog) SetContent(value string) error {
	c, err := valueobject.NewContent(value)
	if err != nil {
		return err
	}
	b.content = c
	b.touch()
	return nil
}

func (b *Blog) SetHeroImage(url string) {
	b.heroImage = url
	b.touch()
}

func (b *Blog) touch() {
	b.updatedAt = time.Now().UTC()
}
