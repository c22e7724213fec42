package user

import (
	userRepo "invoicely/database/repository/user"
	"invoicely/models"
)

// UserService covers account registration and authentication. It
// mints the bearer tokens the invoice endpoints require.
type UserService interface {
	RegisterUser(name, email, password string) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	GetUserByID(userID string) (*models.User, error)
	RevokeAuthToken(userID string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
