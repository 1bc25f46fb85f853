package services

import (
	"ClaimTrack/models"
	"ClaimTrack/repositories"
	"ClaimTrack/utils"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService(users *repositories.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Login verifies credentials and issues access and refresh tokens.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}
	access, refresh, err := utils.GenerateTokens(user.ID, user.Role.Name)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

// Register creates a user with a bcrypt-hashed password in the given role.
func (s *AuthService) Register(ctx context.Context, username, email, password, roleName string) (*models.User, error) {
	user := models.User{Username: username, Email: email, Password: password}
	if err := utils.ValidateUserData(user); err != nil {
		return nil, err
	}
	role, err := s.users.GetRoleByName(ctx, roleName)
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hash)
	user.RoleID = role.ID
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}
	user.Role = *role
	return &user, nil
}

// GetByID resolves the acting user, used when attributing notes.
func (s *AuthService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}
