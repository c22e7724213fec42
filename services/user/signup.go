package user

import (
	"fmt"
	"strings"

	"invoicely/models"
	"invoicely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates the registration data, persists the user and
// returns an AuthResponse carrying a fresh bearer token.
func (s *DefaultUserService) RegisterUser(name, email, password string) (*AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: email}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	utils.CacheTokenHash(userObj.ID, userObj.TokenHash)

	return &AuthResponse{
		ID:    userObj.ID,
		Name:  userObj.Name,
		Email: userObj.Email,
		Token: token,
	}, nil
}
