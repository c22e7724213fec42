package handlers

import (
	userRepo "invoicely/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers and shared dependencies that the
// route registration needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// Invoice endpoints.
	CreateInvoiceHandler  gin.HandlerFunc
	ListInvoicesHandler   gin.HandlerFunc
	GetInvoiceByIDHandler gin.HandlerFunc

	// Auth endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetCurrentUserHandler   gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc
}
