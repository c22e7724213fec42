package models

import "time"

// InvoiceStatus enumerates the lifecycle states an invoice can carry.
// The service never transitions a stored invoice between states; the
// status is fixed at creation time.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "Pending"
	StatusPaid      InvoiceStatus = "Paid"
	StatusCancelled InvoiceStatus = "Cancelled"
	StatusOverdue   InvoiceStatus = "Overdue"
)

// Valid reports whether s is one of the known invoice statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusOverdue:
		return true
	}
	return false
}

// LineItem is one billable entry on an invoice. Amount is always
// derived as quantity * rate; callers cannot set it directly.
type LineItem struct {
	Description string  `bson:"description" json:"description"`
	Quantity    float64 `bson:"quantity" json:"quantity"`
	Rate        float64 `bson:"rate" json:"rate"`
	Amount      float64 `bson:"amount" json:"amount"`
}

// Invoice represents a customer invoice owned by a single user.
// TotalAmount always equals the sum of the item amounts.
type Invoice struct {
	ID            string        `bson:"id" json:"_id"`
	User          string        `bson:"user" json:"user"`
	CustomerName  string        `bson:"customerName" json:"customerName"`
	InvoiceNumber string        `bson:"invoiceNumber" json:"invoiceNumber"`
	IssueDate     time.Time     `bson:"issueDate" json:"issueDate"`
	Items         []LineItem    `bson:"items" json:"items"`
	TotalAmount   float64       `bson:"totalAmount" json:"totalAmount"`
	Status        InvoiceStatus `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
