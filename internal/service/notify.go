package service

import (
	"context"
	"fmt"

	"github.com/ndanilova/calendar-server/internal/logger"
	"github.com/ndanilova/calendar-server/internal/model"
)

// Notifier sends reminder mails on behalf of a logged-in user.
type Notifier struct {
	mailer model.Mailer
	logger *logger.Logger
}

func NewNotifier(mailer model.Mailer, logger *logger.Logger) *Notifier {
	return &Notifier{mailer: mailer, logger: logger}
}

func (n *Notifier) Send(ctx context.Context, to, subject, message string) error {
	if to == "" {
		return model.NewValidationError("to")
	}
	if message == "" {
		return model.NewValidationError("message")
	}

	if err := n.mailer.Send(ctx, to, subject, message); err != nil {
		n.logger.Error("Notifier service: failed to send mail",
			"to", to,
			"error", err.Error())
		return fmt.Errorf("failed to send mail: %w", err)
	}

	n.logger.Info("Notifier service: mail sent",
		"to", to)

	return nil
}
