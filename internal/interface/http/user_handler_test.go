package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogforge/internal/application"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
	"blogforge/internal/interface/middleware"
	"blogforge/pkg/helpers"
	"blogforge/pkg/validation"
)

type stubUserRepo struct {
	users []*entity.User
}

func (r *stubUserRepo) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	r.users = append(r.users, u)
	return u, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) GetAll(_ context.Context, skip, limit int, _ string) ([]*entity.User, int, error) {
	total := len(r.users)
	if skip >= total {
		return []*entity.User{}, total, nil
	}
	end := skip + limit
	if end > total {
		end = total
	}
	return r.users[skip:end], total, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, u *entity.User) (*entity.User, error) {
	for i, existing := range r.users {
		if existing.ID() == id {
			r.users[i] = u
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (bool, error) {
	for i, u := range r.users {
		if u.ID() == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubUoW struct {
	users *stubUserRepo
}

func (s *stubUoW) Users() repository.UserRepository { return s.users }
func (s *stubUoW) Blogs() repository.BlogRepository { return nil }
func (s *stubUoW) Commit(context.Context) error     { return nil }
func (s *stubUoW) Rollback(context.Context) error   { return nil }

type stubFactory struct {
	uow *stubUoW
}

func (f *stubFactory) Begin(context.Context) (repository.UnitOfWork, error) {
	return f.uow, nil
}

type testEnv struct {
	router *gin.Engine
	repo   *stubUserRepo
	auth   *application.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	repo := &stubUserRepo{}
	factory := &stubFactory{uow: &stubUoW{users: repo}}
	hasher := helpers.NewBcryptHasher()
	jwt := helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	auth := application.NewAuthService(repo, hasher, jwt, nil, nil)

	h := &UserHandler{
		Create:         application.NewCreateUserUseCase(factory, hasher, helpers.NewUUIDGenerator(), nil, "", nil),
		Get:            application.NewGetUserUseCase(repo),
		Update:         application.NewUpdateUserUseCase(factory),
		Delete:         application.NewDeleteUserUseCase(factory),
		ChangePassword: application.NewChangePasswordUseCase(factory, hasher),
	}
	ah := NewAuthHandler(auth, helpers.NewCookie("localhost", false), nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/users", h.Register)
	api.GET("/users", h.List)
	api.GET("/users/:id", h.GetByID)
	api.POST("/auth/login", ah.Login)

	protected := api.Group("/")
	protected.Use(middleware.Auth(auth))
	protected.PATCH("/users/:id", h.UpdateProfile)
	protected.DELETE("/users/:id", h.DeleteAccount)
	protected.POST("/users/:id/password", h.ChangeUserPassword)
	protected.GET("/profile", h.Profile)

	return &testEnv{router: r, repo: repo, auth: auth}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func registerPayload() map[string]any {
	return map[string]any{
		"first_name": "John",
		"last_name":  "Doe",
		"username":   "johndoe",
		"password":   "Str0ng!pass",
	}
}

func (e *testEnv) login(t *testing.T, username, password string) (string, string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/auth/login", map[string]any{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			AccessToken string `json:"access_token"`
			User        struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Data.AccessToken, body.Data.User.ID
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("201 on success, password never leaves", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/users", registerPayload(), "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"johndoe"`)
		assert.NotContains(t, w.Body.String(), "Str0ng!pass")
	})

	t.Run("409 on duplicate username", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)

		w := env.do(t, http.MethodPost, "/api/users", registerPayload(), "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "The username 'johndoe' is already taken.")
	})

	t.Run("400 on weak password", func(t *testing.T) {
		env := newTestEnv(t)
		payload := registerPayload()
		payload["password"] = "weakpass"
		w := env.do(t, http.MethodPost, "/api/users", payload, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("400 on missing fields", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodPost, "/api/users", map[string]any{"username": "johndoe"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("valid credentials return tokens and set cookies", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)

		w := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "johndoe", "password": "Str0ng!pass"}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "access_token")
		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, c := range cookies {
			names = append(names, c.Name)
		}
		assert.Contains(t, names, "access_token")
		assert.Contains(t, names, "refresh_token")
	})

	t.Run("401 with the same message for wrong user and wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)

		w1 := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "nobody", "password": "Str0ng!pass"}, "")
		w2 := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{"username": "johndoe", "password": "Wrong!pass1"}, "")
		assert.Equal(t, http.StatusUnauthorized, w1.Code)
		assert.Equal(t, http.StatusUnauthorized, w2.Code)
		assert.Contains(t, w1.Body.String(), "Invalid username or password")
		assert.Contains(t, w2.Body.String(), "Invalid username or password")
	})
}

func TestProtectedEndpoints(t *testing.T) {
	t.Run("401 without a token", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(t, http.MethodGet, "/api/profile", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("profile returns the authenticated user", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)
		token, _ := env.login(t, "johndoe", "Str0ng!pass")

		w := env.do(t, http.MethodGet, "/api/profile", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"johndoe"`)
	})

	t.Run("patching another user's profile is 401", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)
		other := registerPayload()
		other["username"] = "janeroe"
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", other, "").Code)
		token, _ := env.login(t, "janeroe", "Str0ng!pass")

		victim, err := env.repo.GetByUsername(context.Background(), "johndoe")
		require.NoError(t, err)

		w := env.do(t, http.MethodPatch, "/api/users/"+victim.ID(), map[string]any{"first_name": "Hacked"}, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "You are not authorized to update this user.")
	})

	t.Run("patching a missing user is 404", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)
		token, _ := env.login(t, "johndoe", "Str0ng!pass")

		w := env.do(t, http.MethodPatch, "/api/users/ghost", map[string]any{"first_name": "Johnny"}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User with identifier 'user_id: ghost' was not found.")
	})

	t.Run("change password with a wrong old password is 400", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)
		token, uid := env.login(t, "johndoe", "Str0ng!pass")

		w := env.do(t, http.MethodPost, "/api/users/"+uid+"/password", map[string]any{
			"old_password":         "Wrong!pass1",
			"new_password":         "Fresh!pass1",
			"confirm_new_password": "Fresh!pass1",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Old password is incorrect.")
	})

	t.Run("delete own account then the token stops working", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)
		token, uid := env.login(t, "johndoe", "Str0ng!pass")

		w := env.do(t, http.MethodDelete, "/api/users/"+uid, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/profile", nil, token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPublicUserReads(t *testing.T) {
	t.Run("get by id is public and 404s on a miss", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)
		u, err := env.repo.GetByUsername(context.Background(), "johndoe")
		require.NoError(t, err)

		w := env.do(t, http.MethodGet, "/api/users/"+u.ID(), nil, "")
		assert.Equal(t, http.StatusOK, w.Code)

		w = env.do(t, http.MethodGet, "/api/users/ghost", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list wraps the pagination envelope", func(t *testing.T) {
		env := newTestEnv(t)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/users", registerPayload(), "").Code)

		w := env.do(t, http.MethodGet, "/api/users?skip=0&limit=5", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
		assert.Contains(t, w.Body.String(), `"items"`)
	})
}
