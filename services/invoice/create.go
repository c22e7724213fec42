package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	invoiceRepo "invoicely/database/repository/invoice"
	"invoicely/models"
	"invoicely/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateInvoiceNumber produces a timestamp-derived invoice number.
// Uniqueness is not guaranteed by generation alone; the store enforces
// it with a unique index, and a collision surfaces as a ConflictError
// the caller may retry.
func GenerateInvoiceNumber() string {
	return fmt.Sprintf("INV-%d", time.Now().UnixMilli())
}

// CreateInvoice validates the input, values the line items and
// persists a new invoice owned by ownerID. Validation failures are
// reported before the store is ever touched.
func (s *DefaultInvoiceService) CreateInvoice(ownerID string, input CreateInvoiceInput) (*models.Invoice, error) {
	logger := utils.GetLogger()

	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		return nil, ValidationError{Message: "customerName is required"}
	}
	for i, it := range input.Items {
		if strings.TrimSpace(it.Description) == "" {
			return nil, ValidationError{Message: fmt.Sprintf("items[%d].description is required", i)}
		}
	}

	status := models.StatusPending
	if input.Status != "" {
		status = models.InvoiceStatus(input.Status)
		if !status.Valid() {
			return nil, ValidationError{Message: fmt.Sprintf("invalid status %q", input.Status)}
		}
	}

	items, total := ComputeTotals(input.Items)

	inv := &models.Invoice{
		ID:            uuid.New().String(),
		User:          ownerID,
		CustomerName:  customerName,
		InvoiceNumber: GenerateInvoiceNumber(),
		IssueDate:     time.Now(),
		Items:         items,
		TotalAmount:   total,
		Status:        status,
	}

	if err := s.Repo.Create(inv); err != nil {
		if errors.Is(err, invoiceRepo.ErrDuplicateInvoiceNumber) {
			return nil, ConflictError{Message: "invoice number already exists, please retry"}
		}
		logger.Error("CreateInvoice: failed to persist invoice",
			zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return inv, nil
}
