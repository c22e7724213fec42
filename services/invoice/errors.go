package invoice

// ValidationError signals malformed or missing required input. The
// caller can recover by correcting the payload.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// ConflictError signals a uniqueness violation on the generated
// invoice number. The caller can recover by resubmitting.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// NotFoundError signals that the referenced invoice does not exist.
type NotFoundError struct {
	InvoiceID string
}

func (e NotFoundError) Error() string { return "invoice not found" }

// ForbiddenError signals that the requester is authenticated but does
// not own the invoice.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string { return e.Message }
