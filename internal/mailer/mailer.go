package mailer

import (
	"context"
	"log"
)

// Mailer delivers one-time password-reset codes out of band. Implementations
// wrap whatever email integration the deployment uses.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}

// LogMailer writes codes to the process log instead of sending email. It is
// the stand-in delivery channel for local development and tests.
type LogMailer struct{}

var _ Mailer = (*LogMailer)(nil)

// NewLogMailer creates a log-backed mailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendOTP logs the code for the operator to relay.
func (m *LogMailer) SendOTP(_ context.Context, email, code string) error {
	log.Printf("OTP for %s: %s", email, code)
	return nil
}
