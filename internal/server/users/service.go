// Package users implements the identity service: credential storage,
// password verification and signed-session issuance/validation.
package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/avelichko/garagevault/internal/common"
	"github.com/avelichko/garagevault/internal/server/auth"
	"github.com/avelichko/garagevault/internal/server/config"
)

// emailPattern accepts anything of the form local@domain.tld without
// whitespace or extra @.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

// AuthResult is what register and login hand back to the boundary:
// a signed session token plus the owning user.
type AuthResult struct {
	Token string
	User  *User
}

type Service struct {
	repo          Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Emails are stored and compared only in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register validates the credentials, stores the user with a bcrypt hash and
// issues a session token. The plaintext password is never persisted.
func (s *Service) Register(ctx context.Context, email, password string) (*AuthResult, error) {

	email = NormalizeEmail(email)
	if !emailPattern.MatchString(email) {
		return nil, common.ErrorInvalidEmailFormat
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrorPasswordTooShort
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrorEmailExists
	} else if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorEmailExists) {
			return nil, common.ErrorEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(user)
}

// Login verifies the credentials and issues a token shaped exactly like the
// one from Register. Unknown email and wrong password are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	email = NormalizeEmail(email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !auth.VerifyPassword(user.PasswordHash, password) {
		return nil, common.ErrorInvalidCredentials
	}

	return s.issueToken(user)
}

// ValidateToken resolves a session token to the user id it asserts.
func (s *Service) ValidateToken(ctx context.Context, token string) (string, error) {

	if strings.TrimSpace(token) == "" {
		return "", common.ErrorMissingToken
	}

	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}

	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUserNotFound
		}
		return "", common.ErrorInternal
	}

	return userID, nil
}

func (s *Service) issueToken(user *User) (*AuthResult, error) {
	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return &AuthResult{Token: token, User: user}, nil
}
