package invoice

import (
	"fmt"

	"invoicely/models"
	"invoicely/utils"

	"go.uber.org/zap"
)

// ListInvoices returns the invoices owned by ownerID, newest issue
// date first. A user with no invoices gets an empty slice.
func (s *DefaultInvoiceService) ListInvoices(ownerID string) ([]models.Invoice, error) {
	invoices, err := s.Repo.ListByOwner(ownerID)
	if err != nil {
		utils.GetLogger().Error("ListInvoices: failed to list invoices",
			zap.String("ownerID", ownerID), zap.Error(err))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	return invoices, nil
}

// GetInvoice fetches one invoice for the requester. The existence
// check runs before the ownership check: a missing invoice is always
// NotFoundError, even for a requester who would not own it.
func (s *DefaultInvoiceService) GetInvoice(requesterID, invoiceID string) (*models.Invoice, error) {
	inv, err := s.Repo.GetByID(invoiceID)
	if err != nil {
		utils.GetLogger().Error("GetInvoice: failed to fetch invoice",
			zap.String("invoiceID", invoiceID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch invoice: %w", err)
	}
	if inv == nil {
		return nil, NotFoundError{InvoiceID: invoiceID}
	}
	if inv.User != requesterID {
		return nil, ForbiddenError{Message: "not authorized to view this invoice"}
	}
	return inv, nil
}
