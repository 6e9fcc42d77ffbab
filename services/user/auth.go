package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	userRepo "medicore/database/repository/user"
	"medicore/models"
	"medicore/services/scheduling"
	"medicore/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email or password. The two
// cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates the account, hashes the password and returns a fresh
// session token. The welcome mail is best-effort.
func (s *DefaultUserService) Register(ctx context.Context, u *models.User) (*models.User, string, error) {
	if err := validateRegistration(u); err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hashing password: %w", err)
	}

	u.ID = uuid.New().String()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Password = ""
	u.PasswordHash = string(hash)
	if u.Role == "" {
		u.Role = models.RolePatient
	}
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if err := s.Repo.Create(u); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, "", fmt.Errorf("%w: %v", scheduling.ErrValidation, err)
		}
		return nil, "", fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}

	token, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, "", err
	}

	if s.Mailer != nil {
		if err := s.Mailer.SendWelcome(ctx, u); err != nil && s.Logger != nil {
			s.Logger.Warn("welcome email failed", zap.String("userId", u.ID), zap.Error(err))
		}
	}
	return u, token, nil
}

// Login verifies the password and issues a session token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueSession(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout revokes the session by dropping its cache entry. The JWT itself
// stays signed but the auth middleware rejects tokens with no live session.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *DefaultUserService) issueSession(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, string(u.Role), TokenTTL)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	key := utils.AuthCachePrefix + utils.HashToken(token)
	if err := utils.GetAuthCacheClient().Set(ctx, key, u.ID, TokenTTL).Err(); err != nil {
		return "", fmt.Errorf("%w: %v", scheduling.ErrStorageUnavailable, err)
	}
	return token, nil
}

func validateRegistration(u *models.User) error {
	if strings.TrimSpace(u.Name) == "" {
		return fmt.Errorf("%w: name is required", scheduling.ErrValidation)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: a valid email is required", scheduling.ErrValidation)
	}
	if len(u.Password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", scheduling.ErrValidation)
	}
	return nil
}
