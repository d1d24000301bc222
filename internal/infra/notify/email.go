package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"clipvault/internal/pkg/errs"
	"clipvault/internal/usecase/shared"

	"github.com/resendlabs/resend-go"
)

// Email sends the sale summary to the shop owners through Resend.
type Email struct {
	send func(*resend.SendEmailRequest) error
	from string
	to   []string
}

func NewEmail(apiKey, from string, to []string) *Email {
	client := resend.NewClient(apiKey)
	return &Email{
		send: func(req *resend.SendEmailRequest) error {
			_, err := client.Emails.Send(req)
			return err
		},
		from: from,
		to:   to,
	}
}

func (e *Email) NotifySale(ctx context.Context, ev shared.SaleEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := &resend.SendEmailRequest{
		From:    e.from,
		To:      e.to,
		Subject: fmt.Sprintf("New sale: %s %s via %s", ev.Amount, strings.ToUpper(ev.Currency), ev.Method),
		Html:    "<pre>" + html.EscapeString(formatSale(ev)) + "</pre>",
	}
	if err := e.send(req); err != nil {
		return errs.Wrap(err, "failed to send sale email via Resend")
	}
	return nil
}
