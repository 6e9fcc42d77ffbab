package user

import (
	"context"
	"time"

	userRepo "medicore/database/repository/user"
	"medicore/models"

	"go.uber.org/zap"
)

// TokenTTL is how long a login session token stays valid.
const TokenTTL = 72 * time.Hour

// WelcomeMailer sends the post-registration welcome email.
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, user *models.User) error
}

// UserService manages accounts: registration, login and profile upkeep.
type UserService interface {
	Register(ctx context.Context, user *models.User) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, token string) error
	GetByID(id string) (*models.User, error)
	UpdateProfile(id string, updated *models.User) (*models.User, error)
	UpdateMedicalProfile(id string, profile *models.PatientProfile) (*models.User, error)
	Delete(id string) error
	GetAll() ([]models.User, error)
}

type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Mailer WelcomeMailer
	Logger *zap.Logger
}
