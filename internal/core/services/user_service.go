package services

import (
	"context"
	"log"
	"strings"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/pagination"
	"valiant-hris/internal/pkg/password"
)

// UserService handles user account administration
type UserService struct {
	userRepo repositories.UserRepository
	hasher   *password.Hasher
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, hasher *password.Hasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// CreateUserInput represents an account created by an administrator
type CreateUserInput struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     domain.Role `json:"role"`
}

// List returns one page of users
func (s *UserService) List(ctx context.Context, params *pagination.Params) (*pagination.Page, error) {
	users, total, err := s.userRepo.List(ctx, params.Offset, params.Limit)
	if err != nil {
		return nil, err
	}
	return pagination.NewPage(users, params, total), nil
}

// Get returns a user by ID
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Create creates a user with any role. Role defaults to employee.
func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domain.Validation("Name, email and password are required")
	}
	role := input.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !role.Valid() {
		return nil, domain.Validation("Invalid role: %s", role)
	}
	if err := password.ValidateStrength(input.Password); err != nil {
		return nil, domain.Validation("%s", passwordMessage(err))
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, Password: hashed, Role: role}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User created: %s [%s]", user.Email, user.Role)
	return user, nil
}

// ResetPassword sets a new password without knowing the old one
func (s *UserService) ResetPassword(ctx context.Context, id, newPassword string) error {
	if err := password.ValidateStrength(newPassword); err != nil {
		return domain.Validation("%s", passwordMessage(err))
	}
	hashed, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, id, hashed); err != nil {
		return err
	}
	log.Printf("✅ Password reset for user %s", id)
	return nil
}

// ResetPasswordByEmail resets the password of the account with the email
func (s *UserService) ResetPasswordByEmail(ctx context.Context, email, newPassword string) error {
	user, err := s.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return err
	}
	return s.ResetPassword(ctx, user.ID, newPassword)
}

// Delete removes a user. Administrators cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return domain.ErrCannotDeleteSelf
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	log.Printf("✅ User deleted: %s", id)
	return nil
}
