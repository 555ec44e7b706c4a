// Package notify delivers account notifications such as recovery tokens.
package notify

import (
	"context"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
)

// Notifier delivers account notices to the owner of email.
type Notifier interface {
	SendRecoveryToken(ctx context.Context, email, token string, expiresAt time.Time) error
	// SendRegistrationAttempt tells the owner that someone tried to
	// register their address again.
	SendRegistrationAttempt(ctx context.Context, email string) error
}

// LogNotifier records deliveries in the log instead of sending mail. The
// token itself is never logged.
type LogNotifier struct {
	logger logging.Logger
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("module", "notify")}
}

func (n *LogNotifier) SendRecoveryToken(ctx context.Context, email, _ string, expiresAt time.Time) error {
	n.logger.Info(ctx, "recovery token issued", "email", email, "expires_at", expiresAt.UTC().Format(time.RFC3339))
	return nil
}

func (n *LogNotifier) SendRegistrationAttempt(ctx context.Context, email string) error {
	n.logger.Info(ctx, "registration attempted for existing account", "email", email)
	return nil
}
