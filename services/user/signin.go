package user

import (
	"fmt"
	"strings"

	"invoicely/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies the email/password pair and rotates the
// user's bearer token. The previous token stops working once the new
// hash is stored.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, InvalidCredentialsError{}
	}

	token, err := utils.GenerateToken(userRec.ID, userRec.Email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateTokenHash(userRec.ID, tokenHash); err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	utils.CacheTokenHash(userRec.ID, tokenHash)

	return &AuthResponse{
		ID:    userRec.ID,
		Name:  userRec.Name,
		Email: userRec.Email,
		Token: token,
	}, nil
}

// RevokeAuthToken clears the stored token hash so the current bearer
// token stops authenticating.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	if err := s.Repo.UpdateTokenHash(userID, ""); err != nil {
		utils.GetLogger().Error("RevokeAuthToken: failed to clear token hash",
			zap.String("userID", userID), zap.Error(err))
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	utils.EvictTokenHash(userID)
	return nil
}
