package noop

import (
	"context"
	"log"

	"gstbill/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs instead of sending.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendInvoiceIssued(_ context.Context, toEmail, toName string, email port.InvoiceEmail) error {
	log.Printf("[NOOP EMAIL] Invoice %s notification for %s (%s): total %.2f",
		email.InvoiceNumber, toName, toEmail, email.GrandTotal)
	return nil
}
