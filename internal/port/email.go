package port

import "context"

// InvoiceEmail carries the fields rendered into an invoice notification.
type InvoiceEmail struct {
	CompanyName   string
	InvoiceNumber string
	InvoiceDate   string
	GrandTotal    float64
	AmountInWords string
}

// EmailSender abstracts outbound email delivery.
type EmailSender interface {
	SendInvoiceIssued(ctx context.Context, toEmail, toName string, email InvoiceEmail) error
}
