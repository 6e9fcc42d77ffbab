package userRepo

import (
	"errors"

	"medicore/models"
)

var (
	// ErrNotFound is returned when no user matches the given ID or email.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert violates the unique email index.
	ErrDuplicateEmail = errors.New("an account with this email already exists")
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetAll() ([]models.User, error)
}
