package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstbill/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendInvoiceIssued(ctx context.Context, toEmail, toName string, email port.InvoiceEmail) error {
	subject := fmt.Sprintf("Invoice %s from %s", email.InvoiceNumber, email.CompanyName)
	htmlBody := buildInvoiceHTML(toName, email)
	textBody := fmt.Sprintf(
		"Dear %s,\n\nInvoice %s dated %s has been issued by %s.\n\nInvoice total: Rs. %.2f\n(%s)\n\nPlease get in touch with %s for a copy of the invoice or any questions.\n",
		toName, email.InvoiceNumber, email.InvoiceDate, email.CompanyName,
		email.GrandTotal, email.AmountInWords, email.CompanyName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildInvoiceHTML(name string, email port.InvoiceEmail) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Invoice %s</h2>
  <p>Dear %s,</p>
  <p>Invoice <strong>%s</strong> dated %s has been issued by %s.</p>
  <table style="border-collapse: collapse; margin: 20px 0;">
    <tr>
      <td style="padding: 8px 16px 8px 0; color: #666;">Invoice total</td>
      <td style="padding: 8px 0; font-weight: bold;">&#8377; %.2f</td>
    </tr>
    <tr>
      <td style="padding: 8px 16px 8px 0; color: #666;">In words</td>
      <td style="padding: 8px 0;">%s</td>
    </tr>
  </table>
  <p>Please get in touch with %s for a copy of the invoice or any questions.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">%s</p>
</body>
</html>`, email.InvoiceNumber, name, email.InvoiceNumber, email.InvoiceDate,
		email.CompanyName, email.GrandTotal, email.AmountInWords,
		email.CompanyName, email.CompanyName)
}
