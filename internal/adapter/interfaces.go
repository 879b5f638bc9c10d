// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound mail collaborator of the form
// service.
//
// The primary abstraction is [Mailer], which decouples notification logic
// from the delivery channel. The package ships an HTTP mail gateway
// implementation ([NewHTTPMailer]) and a log-only implementation
// ([NewLogMailer]) used when no gateway is configured.
//
// Every delivery failure wraps [ErrMailDispatch]; gateway status codes are
// additionally mapped by mapHTTPError so that callers can use [errors.Is]
// (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// Mailer delivers one message to all of its recipients at once.
type Mailer interface {
	// Send hands msg over to the delivery channel. Implementations must
	// honour ctx cancellation.
	Send(ctx context.Context, msg models.EmailMessage) error
}

// NewMailer returns the HTTP gateway mailer when cfg.APIURL is set and the
// log mailer otherwise.
func NewMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.APIURL == "" {
		logger.Warn().Str("func", "adapter.NewMailer").Msg("mail gateway is not configured, notifications will only be logged")
		return NewLogMailer(logger), nil
	}
	return NewHTTPMailer(cfg, logger)
}
