package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"valiant-hris/internal/adapters/persistence/models"
	"valiant-hris/internal/adapters/persistence/repositories"
	"valiant-hris/internal/core/domain"
	"valiant-hris/internal/pkg/jwt"
	"valiant-hris/internal/pkg/password"
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *password.Hasher
	issuer   *jwt.Issuer
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, hasher *password.Hasher, issuer *jwt.Issuer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput represents self-registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordInput represents a password change by the account owner
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResult is a signed token and the user it was issued to
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// NormalizeEmail trims and lower-cases an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies credentials and issues a token.
// Unknown email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResult, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.Validation("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.hasher.Mismatch(input.Password)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issue(user)
}

// Register creates an employee account and signs it in
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return nil, domain.Validation("Name, email and password are required")
	}
	if err := password.ValidateStrength(input.Password); err != nil {
		return nil, domain.Validation("%s", passwordMessage(err))
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     domain.RoleEmployee,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s", user.Email)
	return s.issue(user)
}

// Me returns the user behind a verified token
func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUserGone
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the caller's password after checking the current one
func (s *AuthService) ChangePassword(ctx context.Context, userID string, input *ChangePasswordInput) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domain.Validation("Current password and new password are required")
	}
	if err := password.ValidateStrength(input.NewPassword); err != nil {
		return domain.Validation("%s", passwordMessage(err))
	}

	user, err := s.Me(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(input.CurrentPassword, user.Password) {
		return domain.ErrWrongPassword
	}

	hashed, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashed); err != nil {
		return err
	}

	log.Printf("✅ Password changed for user %s", user.ID)
	return nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.issuer.Issue(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func passwordMessage(err error) string {
	switch {
	case errors.Is(err, password.ErrTooShort):
		return "Password must be at least 8 characters"
	case errors.Is(err, password.ErrTooLong):
		return "Password must be at most 72 bytes"
	default:
		return "Invalid password"
	}
}
