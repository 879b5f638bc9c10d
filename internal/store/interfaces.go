// Package store persists forms, submissions and email templates in
// PostgreSQL.
//
// Repositories are safe for concurrent use; the database is the only shared
// state. Not-found conditions are reported with the sentinel errors declared
// in errors.go.
package store

import (
	"context"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FormRepository stores form definitions. Fields and email settings are kept
// inside the form row, so every read returns one consistent snapshot.
type FormRepository interface {
	CreateForm(ctx context.Context, form models.Form) (models.Form, error)
	GetForm(ctx context.Context, id string) (models.Form, error)
	// GetActiveFormByPage returns the oldest active form bound to page.
	GetActiveFormByPage(ctx context.Context, page string) (models.Form, error)
	ListForms(ctx context.Context) ([]models.Form, error)
	UpdateForm(ctx context.Context, form models.Form) (models.Form, error)
	// DeleteForm removes the form and all its submissions in one transaction.
	DeleteForm(ctx context.Context, id string) error
}

// SubmissionRepository stores submitted form data.
type SubmissionRepository interface {
	CreateSubmission(ctx context.Context, submission models.Submission) (models.Submission, error)
	// ListSubmissionsByForm returns the submissions of one form, newest first.
	ListSubmissionsByForm(ctx context.Context, formID string) ([]models.Submission, error)
	// ListSubmissionsByForms groups the submissions of several forms by form
	// id, newest first within each group.
	ListSubmissionsByForms(ctx context.Context, formIDs []string) (map[string][]models.Submission, error)
	GetSubmission(ctx context.Context, id string) (models.Submission, error)
	DeleteSubmission(ctx context.Context, id string) error
}

// EmailTemplateRepository stores notification templates.
type EmailTemplateRepository interface {
	CreateEmailTemplate(ctx context.Context, template models.EmailTemplate) (models.EmailTemplate, error)
	GetEmailTemplate(ctx context.Context, id string) (models.EmailTemplate, error)
	ListEmailTemplates(ctx context.Context) ([]models.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, id string) error
}
