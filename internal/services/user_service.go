package services

import (
	"errors"
	"fmt"

	"github.com/komisi-informasi/case-management-api/internal/models"
	"github.com/komisi-informasi/case-management-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserAlreadyExists    = errors.New("username or email already exists")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// Only commission staff manage user accounts.
var userManagerRoles = []models.UserRole{models.RoleStafKomisi}

// UserService handles user account management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUserInput represents input for creating a user account.
type CreateUserInput struct {
	Username string
	Email    string
	FullName string
	Role     models.UserRole
	Phone    *string
	Password string
}

// CreateUser hashes the password and persists a new account. Username and
// email uniqueness is enforced by the storage layer, not pre-checked.
func (s *UserService) CreateUser(actor Actor, input CreateUserInput) (*models.User, error) {
	if !roleAllowed(actor.Role, userManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         input.Role,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// ListUsers returns every user account.
func (s *UserService) ListUsers(actor Actor) ([]models.User, error) {
	if !roleAllowed(actor.Role, userManagerRoles...) {
		return nil, ErrPermissionDenied
	}

	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
