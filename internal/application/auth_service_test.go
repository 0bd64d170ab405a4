package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogforge/internal/domain/domainerr"
	"blogforge/pkg/helpers"
)

func newAuthService(f *memUoWFactory) *AuthService {
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	return NewAuthService(f.uow.users, fakeHasher{}, jwt, nil, nil)
}

func TestAuthenticate(t *testing.T) {
	t.Run("issues a token pair for valid credentials", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		res, err := svc.Authenticate(context.Background(), "johndoe", "Str0ng!pass")
		require.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.Greater(t, res.AccessTokenTTL, 0)
		require.NotNil(t, res.User)
		assert.Equal(t, "johndoe", res.User.Username)
	})

	t.Run("unknown username and wrong password are indistinguishable", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		_, errUnknown := svc.Authenticate(context.Background(), "nosuchuser", "Str0ng!pass")
		_, errWrongPw := svc.Authenticate(context.Background(), "johndoe", "Wrong!pass1")

		require.Error(t, errUnknown)
		require.Error(t, errWrongPw)
		assert.True(t, domainerr.IsUnauthorized(errUnknown))
		assert.True(t, domainerr.IsUnauthorized(errWrongPw))
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
		assert.Equal(t, "Invalid username or password", errUnknown.Error())
	})
}

func TestCurrentUser(t *testing.T) {
	t.Run("resolves an issued access token back to its user", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		res, err := svc.Authenticate(context.Background(), "johndoe", "Str0ng!pass")
		require.NoError(t, err)

		user, err := svc.CurrentUser(context.Background(), res.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID())
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		f := newMemFactory()
		svc := newAuthService(f)

		_, err := svc.CurrentUser(context.Background(), "not-a-jwt")
		require.Error(t, err)
		assert.True(t, domainerr.IsUnauthorized(err))
		assert.Equal(t, "Invalid or expired token", err.Error())
	})

	t.Run("rejects a refresh token used as access token", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		res, err := svc.Authenticate(context.Background(), "johndoe", "Str0ng!pass")
		require.NoError(t, err)

		_, err = svc.CurrentUser(context.Background(), res.RefreshToken)
		require.Error(t, err)
		assert.True(t, domainerr.IsUnauthorized(err))
	})

	t.Run("rejects tokens for users that no longer exist", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		res, err := svc.Authenticate(context.Background(), "johndoe", "Str0ng!pass")
		require.NoError(t, err)

		_, _ = f.uow.users.Delete(context.Background(), "u1")
		_, err = svc.CurrentUser(context.Background(), res.AccessToken)
		require.Error(t, err)
		assert.Equal(t, "User not found", err.Error())
	})
}

func TestRefresh(t *testing.T) {
	t.Run("re-issues a pair from a refresh token", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		first, err := svc.Authenticate(context.Background(), "johndoe", "Str0ng!pass")
		require.NoError(t, err)

		second, err := svc.Refresh(context.Background(), first.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, second.AccessToken)
		assert.Equal(t, "u1", second.User.ID)
	})

	t.Run("rejects an access token used as refresh token", func(t *testing.T) {
		f := newMemFactory()
		mustUser(f, "u1", "John", "Doe", "johndoe", "Str0ng!pass")
		svc := newAuthService(f)

		res, err := svc.Authenticate(context.Background(), "johndoe", "Str0ng!pass")
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), res.AccessToken)
		require.Error(t, err)
		assert.True(t, domainerr.IsUnauthorized(err))
	})
}
