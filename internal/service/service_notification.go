package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/store"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// notificationService is the concrete implementation of NotificationService.
// Rendered messages are handed to a MailQueue, so delivery never happens on
// the caller's goroutine.
type notificationService struct {
	templateRepository store.EmailTemplateRepository
	queue              MailQueue

	logger *logger.Logger
}

func NewNotificationService(templateRepository store.EmailTemplateRepository, queue MailQueue, logger *logger.Logger) NotificationService {
	return &notificationService{
		templateRepository: templateRepository,
		queue:              queue,
		logger:             logger,
	}
}

// NotifySubmission renders the form's template with the submitted data and
// queues one message addressed to every recipient. A missing template or an
// empty recipient list skips the notification.
func (n *notificationService) NotifySubmission(ctx context.Context, form models.Form, submission models.Submission) {
	log := logger.FromContext(ctx).With().
		Str("func", "notificationService.NotifySubmission").
		Str("form_id", form.ID).
		Str("submission_id", submission.ID).
		Logger()

	settings := form.EmailSettings
	if !settings.SendEmailOnSubmission {
		return
	}
	if len(settings.RecipientEmails) == 0 {
		log.Warn().Msg("email notification enabled without recipients, skipping")
		return
	}
	if !utils.IsValidID(settings.EmailTemplateID) {
		log.Warn().Str("template_id", settings.EmailTemplateID).Msg("email template is not set, skipping")
		return
	}

	template, err := n.templateRepository.GetEmailTemplate(ctx, settings.EmailTemplateID)
	if errors.Is(err, store.ErrEmailTemplateNotFound) {
		log.Warn().Str("template_id", settings.EmailTemplateID).Msg("email template was not found, skipping")
		return
	}
	if err != nil {
		log.Err(err).Str("template_id", settings.EmailTemplateID).Msg("email template lookup failed")
		return
	}

	msg := models.EmailMessage{
		To:      slices.Clone(settings.RecipientEmails),
		Subject: RenderTemplate(template.Subject, submission.Data),
		Body:    RenderTemplate(template.Body, submission.Data),
	}

	if !n.queue.Enqueue(ctx, msg) {
		log.Warn().Int("recipients", len(msg.To)).Msg("mail queue rejected notification")
		return
	}

	log.Debug().Int("recipients", len(msg.To)).Msg("notification queued")
}

// RenderTemplate replaces every occurrence of {{key}} in text with the
// string form of data[key] in a single pass, so substituted values are never
// expanded again. Tokens naming absent keys are left untouched.
func RenderTemplate(text string, data models.SubmissionData) string {
	if text == "" || len(data) == 0 {
		return text
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, "{{"+key+"}}", placeholderValue(data[key]))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func placeholderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
