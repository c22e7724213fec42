package handlers

import (
	"errors"
	"net/http"

	"invoicely/services/invoice"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler serves the invoice endpoints.
type InvoiceHandler struct {
	Service invoice.InvoiceService
}

// NewInvoiceHandler creates an InvoiceHandler backed by the given service.
func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Service: svc}
}

// writeInvoiceError maps service errors onto HTTP statuses. Unknown
// failures are logged and surfaced as a generic 500 without internal
// detail.
func writeInvoiceError(c *gin.Context, err error) {
	var (
		vErr invoice.ValidationError
		cErr invoice.ConflictError
		nErr invoice.NotFoundError
		fErr invoice.ForbiddenError
	)
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &cErr):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &nErr):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &fErr):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		getLogger(c).Error("invoice operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// CreateInvoiceHandler handles POST /api/invoices. The owner is the
// authenticated identity; any owner field in the payload is ignored.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	ownerID, ok := requesterID(c)
	if !ok {
		return
	}

	var input invoice.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		getLogger(c).Warn("Invalid create invoice request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	inv, err := h.Service.CreateInvoice(ownerID, input)
	if err != nil {
		writeInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvoicesHandler handles GET /api/invoices, scoped to the caller.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	ownerID, ok := requesterID(c)
	if !ok {
		return
	}

	invoices, err := h.Service.ListInvoices(ownerID)
	if err != nil {
		writeInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// GetInvoiceByIDHandler handles GET /api/invoices/:id with the
// ownership check enforced by the service.
func (h *InvoiceHandler) GetInvoiceByIDHandler(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}

	inv, err := h.Service.GetInvoice(requester, c.Param("id"))
	if err != nil {
		writeInvoiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
