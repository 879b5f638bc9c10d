package adapter

import (
	"context"
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that writes every message to logger and
// never fails.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (l *logMailer) Send(ctx context.Context, msg models.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMailDispatch, err)
	}

	l.logger.Info().
		Str("func", "logMailer.Send").
		Strs("to", msg.To).
		Str("subject", msg.Subject).
		Str("body", msg.Body).
		Msg("notification")

	return nil
}
