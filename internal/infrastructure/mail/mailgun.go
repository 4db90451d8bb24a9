package mail

import (
	"context"
	"time"

	"feastly.backend/pkg/logger"
	"github.com/mailgun/mailgun-go/v4"
	"go.uber.org/zap"
)

const (
	verificationSubject  = "Verify Your Email"
	verificationTemplate = "verify-email"

	sendTimeout = 10 * time.Second
)

// Dispatcher sends verification mail through Mailgun. Dispatch is
// fire-and-forget: a failed send is logged and never surfaced to the
// operation that triggered it.
type Dispatcher struct {
	mg   mailgun.Mailgun
	from string
}

// NewDispatcher creates a Mailgun-backed dispatcher
func NewDispatcher(domain, apiKey, from string) *Dispatcher {
	return &Dispatcher{
		mg:   mailgun.NewMailgun(domain, apiKey),
		from: from,
	}
}

// SendVerificationEmail dispatches the verification code to the given
// address on a detached goroutine and returns immediately.
func (d *Dispatcher) SendVerificationEmail(email, code string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		m := d.mg.NewMessage(d.from, verificationSubject, "", email)
		m.SetTemplate(verificationTemplate)
		if err := m.AddTemplateVariable("username", email); err != nil {
			logger.Error(ctx, "Failed to set mail variable", zap.Error(err))
			return
		}
		if err := m.AddTemplateVariable("code", code); err != nil {
			logger.Error(ctx, "Failed to set mail variable", zap.Error(err))
			return
		}

		if _, _, err := d.mg.Send(ctx, m); err != nil {
			logger.Error(ctx, "Failed to send verification email",
				zap.String("to", email),
				zap.Error(err),
			)
			return
		}

		logger.Debug(ctx, "Verification email sent", zap.String("to", email))
	}()
}
