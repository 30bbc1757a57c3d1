package auth

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nordcrm/nordcrm/pkg/logger"
	"github.com/nordcrm/nordcrm/pkg/token"
)

// User is a platform account bound to exactly one tenant.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash []byte    `json:"-"`
	TenantID     uuid.UUID `json:"tenant_id"`
	TenantSlug   string    `json:"tenant_slug"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserStorage defines the storage operations needed for password login.
type UserStorage interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// TenantRef identifies the tenant a session is bound to.
type TenantRef struct {
	ID   uuid.UUID `json:"id"`
	Slug string    `json:"slug"`
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *User     `json:"user"`
	Tenant      TenantRef `json:"tenant"`
}

// Service authenticates users against stored bcrypt hashes and issues
// access tokens carrying the user's tenant binding.
type Service struct {
	storage  UserStorage
	codec    *token.Service
	tokenTTL time.Duration
	log      *slog.Logger
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithTokenTTL overrides the issued token lifetime.
func WithTokenTTL(ttl time.Duration) ServiceOption {
	if ttl <= 0 {
		panic("auth: WithTokenTTL: ttl must be > 0")
	}
	return func(s *Service) { s.tokenTTL = ttl }
}

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) { s.log = log }
}

// NewService creates a login service backed by the given user storage.
func NewService(storage UserStorage, codec *token.Service, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		codec:   codec,
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login verifies the credentials and issues a tenant-bound access token.
// Unknown emails and wrong passwords both return ErrInvalidCredentials so
// responses do not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := s.tokenTTL
	if ttl == 0 {
		ttl = s.codec.TTL()
	}
	accessToken, err := s.codec.Issue(token.Claims{
		UserID:     user.ID,
		Email:      user.Email,
		TenantID:   user.TenantID,
		TenantSlug: user.TenantSlug,
		Role:       user.Role,
	}, ttl)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to issue access token",
			logger.UserID(user.ID.String()), logger.Error(err))
		return nil, err
	}

	return &Session{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   time.Now().Add(ttl),
		User:        user,
		Tenant:      TenantRef{ID: user.TenantID, Slug: user.TenantSlug},
	}, nil
}

// HashPassword produces a bcrypt hash for seeding and registration flows.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}
