package invoice

// LineItemInput is a caller-supplied line item. Quantity and rate are
// deliberately loose-typed: whatever JSON carried (number, numeric
// string, null, garbage) is accepted and coerced during valuation.
// Any amount field in the payload is ignored; amounts are always
// recomputed.
type LineItemInput struct {
	Description string `json:"description"`
	Quantity    any    `json:"quantity"`
	Rate        any    `json:"rate"`
}

// CreateInvoiceInput is the payload for creating an invoice. There is
// no owner field: the owner is always the authenticated identity.
type CreateInvoiceInput struct {
	CustomerName string          `json:"customerName"`
	Items        []LineItemInput `json:"items"`
	Status       string          `json:"status"`
}
