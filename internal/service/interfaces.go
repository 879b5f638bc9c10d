// Package service holds the business logic of the form engine: form
// definition management, submission intake, notification dispatch and
// email template management.
//
// Services validate their input, enforce invariants that span several
// records and delegate persistence to the store package. Errors returned by
// services wrap the sentinels of this package, of store and of validators,
// so transport layers can map them with [errors.Is].
package service

import (
	"context"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/Digitalizetheglobe/dtg-universal-cms/internal/service MailQueue,NotificationService

// FormService manages form definitions.
type FormService interface {
	CreateForm(ctx context.Context, form models.Form) (models.Form, error)
	GetForm(ctx context.Context, id string) (models.Form, error)
	// GetFormByPage returns the active form bound to page.
	GetFormByPage(ctx context.Context, page string) (models.Form, error)
	// ListForms returns every form annotated with its submissions.
	ListForms(ctx context.Context) ([]models.FormWithSubmissions, error)
	// UpdateForm applies patch to the stored form. The id never changes.
	UpdateForm(ctx context.Context, id string, patch models.FormPatch) (models.Form, error)
	// DeleteForm removes the form together with its submissions.
	DeleteForm(ctx context.Context, id string) error
}

// SubmissionService accepts and queries submitted form data.
type SubmissionService interface {
	// Submit validates data against the form's fields, stores it and
	// triggers the configured notification.
	Submit(ctx context.Context, formID string, data models.SubmissionData, meta models.SubmissionMetadata) (models.Submission, error)
	ListByForm(ctx context.Context, formID string) ([]models.Submission, error)
	GetSubmission(ctx context.Context, id string) (models.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

// NotificationService sends the email configured for a form. It never
// fails the caller: problems are logged.
type NotificationService interface {
	NotifySubmission(ctx context.Context, form models.Form, submission models.Submission)
}

// EmailTemplateService manages notification templates.
type EmailTemplateService interface {
	CreateEmailTemplate(ctx context.Context, template models.EmailTemplate) (models.EmailTemplate, error)
	GetEmailTemplate(ctx context.Context, id string) (models.EmailTemplate, error)
	ListEmailTemplates(ctx context.Context) ([]models.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, id string) error
}

// AuthService verifies administrator tokens issued by the identity provider.
type AuthService interface {
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// MailQueue accepts outgoing messages without blocking. Enqueue reports
// whether the message was accepted.
type MailQueue interface {
	Enqueue(ctx context.Context, msg models.EmailMessage) bool
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
