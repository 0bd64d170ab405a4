package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"blogforge/internal/domain/domainerr"
	"blogforge/internal/domain/entity"
	"blogforge/internal/domain/repository"
	"blogforge/pkg/helpers"
)

// AuthResponse carries a freshly issued token pair and the authenticated
// user's public profile. TTLs are in seconds.
type AuthResponse struct {
	AccessToken     string     `json:"access_token"`
	AccessTokenTTL  int        `json:"access_token_ttl"`
	RefreshToken    string     `json:"refresh_token"`
	RefreshTokenTTL int        `json:"refresh_token_ttl"`
	User            *BasicUser `json:"user"`
}

// AuthService authenticates users and resolves tokens back to them.
// The redis session cache is optional plumbing; token validity alone decides
// authentication.
type AuthService struct {
	Users  repository.UserRepository
	Hasher PasswordHasher
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, hasher PasswordHasher, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Hasher: hasher, JWT: jwt, Redis: rdb, Logger: logger}
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// Authenticate verifies the credentials and issues a token pair. The
// failure message never reveals whether the username exists.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*AuthResponse, error) {
	user, err := s.Users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.Hasher.Verify(password, user.PasswordHash()) {
		return nil, domainerr.Unauthorized("Invalid username or password")
	}
	return s.issueTokens(ctx, user)
}

// CurrentUser resolves a bearer token to the user it was issued for.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.ParseAccessToken(token)
	if err != nil {
		return nil, domainerr.Unauthorized("Invalid or expired token")
	}
	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerr.Unauthorized("User not found")
	}
	return user, nil
}

// Refresh validates a refresh token and re-issues a fresh pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerr.Unauthorized("Invalid or expired token")
	}
	user, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerr.Unauthorized("User not found")
	}
	return s.issueTokens(ctx, user)
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*AuthResponse, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(user.ID())
	if err != nil {
		return nil, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(user.ID())
	if err != nil {
		return nil, err
	}

	s.cacheSession(ctx, user)

	return &AuthResponse{
		AccessToken:     access,
		AccessTokenTTL:  int(time.Until(aexp).Seconds()),
		RefreshToken:    refresh,
		RefreshTokenTTL: int(time.Until(rexp).Seconds()),
		User:            basicUser(user),
	}, nil
}

func (s *AuthService) cacheSession(ctx context.Context, user *entity.User) {
	if s.Redis == nil {
		return
	}
	key := sessionKey(user.ID())
	fields := map[string]any{
		"user_id":   user.ID(),
		"username":  user.Username(),
		"logged_in": true,
		"issued_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, 24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", key).Warn("redis pipeline failed")
	}
}

// ClearSession drops the cached session on logout.
func (s *AuthService) ClearSession(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, sessionKey(userID)).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("redis session delete failed")
	}
}
