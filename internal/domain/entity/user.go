// Package entity holds the mutable aggregates of the domain. Fields are
// unexported; every mutation goes through a setter that re-validates via
// the value objects and stamps UpdatedAt.
package entity

import (
	"time"

	"blogforge/internal/domain/valueobject"
)

// User is the aggregate root for accounts. The password field always holds
// a hash; plaintext never reaches the entity.
type User struct {
	id        string
	firstName valueobject.Name
	lastName  valueobject.Name
	username  valueobject.Name
	password  valueobject.Password
	avatar    string
	createdAt time.Time
	updatedAt time.Time
}

// NewUser constructs a user, validating first/last name and username.
// Zero timestamps default to the current UTC time, so both fresh entities
// and rows rehydrated from storage go through the same constructor.
func NewUser(id, firstName, lastName, username, hashedPassword, avatar string, createdAt, updatedAt time.Time) (*User, error) {
	fn, err := valueobject.NewFirstName(firstName)
	if err != nil {
		return nil, err
	}
	ln, err := valueobject.NewLastName(lastName)
	if err != nil {
		return nil, err
	}
	un, err := valueobject.NewUsername(username)
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
	return &User{
		id:        id,
		firstName: fn,
		lastName:  ln,
		username:  un,
		password:  valueobject.NewPassword(hashedPassword),
		avatar:    avatar,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (u *User) ID() string           { return u.id }
func (u *User) FirstName() string    { return u.firstName.String() }
func (u *User) LastName() string     { return u.lastName.String() }
func (u *User) Username() string     { return u.username.String() }
func (u *User) PasswordHash() string { return u.password.Hash() }
func (u *User) Avatar() string       { return u.avatar }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

func (u *User) SetFirstName(value string) error {
	fn, err := valueobject.NewFirstName(value)
	if err != nil {
		return err
	}
	u.firstName = fn
	u.touch()
	return nil
}

func (u *User) SetLastName(value string) error {
	ln, err := valueobject.NewLastName(value)
	if err != nil {
		return err
	}
	u.lastName = ln
	u.touch()
	return nil
}

func (u *User) SetUsername(value string) error {
	un, err := valueobject.NewUsername(value)
	if err != nil {
		return err
	}
	u.username = un
	u.touch()
	return nil
}

// SetPasswordHash replaces the stored hash. Strength validation happens on
// the plaintext before hashing, not here.
func (u *User) SetPasswordHash(hash string) {
	u.password = valueobject.NewPassword(hash)
	u.touch()
}

func (u *User) SetAvatar(url string) {
	u.avatar = url
	u.touch()
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}
