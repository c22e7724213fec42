package user

import (
	"fmt"

	"invoicely/models"
)

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, fmt.Errorf("user with id %s not found", userID)
	}
	return usr, nil
}
