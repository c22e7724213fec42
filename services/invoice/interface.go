package invoice

import (
	invoiceRepo "invoicely/database/repository/invoice"
	"invoicely/models"
)

// InvoiceService exposes the invoice lifecycle operations. The owner
// identity is always passed in explicitly by the caller; the service
// never reads it from ambient state.
type InvoiceService interface {
	// CreateInvoice values the line items, builds the invoice for
	// ownerID and persists it.
	CreateInvoice(ownerID string, input CreateInvoiceInput) (*models.Invoice, error)
	// ListInvoices returns all invoices owned by ownerID, newest
	// issue date first. Zero invoices is an empty slice, not an error.
	ListInvoices(ownerID string) ([]models.Invoice, error)
	// GetInvoice fetches a single invoice. It reports NotFoundError
	// for a missing invoice and ForbiddenError when the invoice
	// exists but belongs to someone else, in that order.
	GetInvoice(requesterID, invoiceID string) (*models.Invoice, error)
}

// DefaultInvoiceService is the production implementation.
type DefaultInvoiceService struct {
	Repo invoiceRepo.InvoiceRepository
}
