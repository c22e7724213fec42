package invoiceRepo

import (
	"errors"

	"invoicely/models"
)

// ErrDuplicateInvoiceNumber is returned by Create when the generated
// invoice number collides with an existing one.
var ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// Create inserts a new invoice record.
	Create(inv *models.Invoice) error
	// ListByOwner retrieves all invoices belonging to ownerID,
	// ordered by issue date descending.
	ListByOwner(ownerID string) ([]models.Invoice, error)
	// GetByID retrieves an invoice by its unique ID. It returns
	// (nil, nil) when no such invoice exists and does not filter by
	// owner; ownership checks belong to the caller.
	GetByID(id string) (*models.Invoice, error)
}
