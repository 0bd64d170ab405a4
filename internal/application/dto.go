package application

import (
	"time"

	"blogforge/internal/domain/entity"
)

// zeroTime lets constructors default timestamps to "now".
var zeroTime time.Time

// Input and response shapes at the use-case boundary. Responses never carry
// the password hash. Pointer fields on update inputs distinguish "not sent"
// from "sent empty": only fields explicitly present are applied.

type CreateUserInput struct {
	FirstName string
	LastName  string
	Username  string
	Password  string
	Avatar    string
}

type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	Avatar    *string
}

type ChangePasswordInput struct {
	OldPassword        string
	NewPassword        string
	ConfirmNewPassword string
}

type CreateBlogInput struct {
	Title     string
	Content   string
	AuthorID  string
	HeroImage string
}

type UpdateBlogInput struct {
	Title     *string
	Content   *string
	HeroImage *string
}

// BasicUser is the compact public profile embedded in other responses.
type BasicUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
}

type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type BlogResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"author_id"`
	HeroImage string     `json:"hero_image,omitempty"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
	Author    *BasicUser `json:"author,omitempty"`
}

// Pagination is the request side of the envelope. Search is an optional
// case-insensitive substring filter applied before counting and slicing.
type Pagination struct {
	Skip   int
	Limit  int
	Search string
}

// PaginatedResponse wraps a page slice with the total match count.
type PaginatedResponse[T any] struct {
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
	Items []T `json:"items"`
}

func userResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Username:  u.Username(),
		Avatar:    u.Avatar(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt().Format(time.RFC3339),
	}
}

func basicUser(u *entity.User) *BasicUser {
	return &BasicUser{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Username:  u.Username(),
		Avatar:    u.Avatar(),
	}
}

func blogResponse(b *entity.Blog) *BlogResponse {
	return &BlogResponse{
		ID:        b.ID(),
		Title:     b.Title(),
		Content:   b.Content(),
		AuthorID:  b.AuthorID(),
		HeroImage: b.HeroImage(),
		CreatedAt: b.CreatedAt().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt().Format(time.RFC3339),
	}
}
