package store

import (
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	sq "github.com/Masterminds/squirrel"
)

// psql is the statement builder shared by every repository. PostgreSQL
// expects $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	formColumns = []string{
		"id", "title", "description", "page", "fields", "email_settings",
		"is_active", "created_by", "updated_by", "created_at", "updated_at",
	}

	submissionColumns = []string{
		"id", "form_id", "data", "submitted_by", "ip_address", "user_agent", "created_at",
	}

	emailTemplateColumns = []string{
		"id", "name", "subject", "body", "created_at", "updated_at",
	}
)

// formRow is the encoded representation of a form row.
type formRow struct {
	ID            string
	Title         string
	Description   string
	Page          string
	Fields        []byte
	EmailSettings []byte
	IsActive      bool
	CreatedBy     string
	UpdatedBy     string
}

func buildInsertFormQuery(row formRow) (string, []any, error) {
	return psql.
		Insert("forms").
		Columns("id", "title", "description", "page", "fields", "email_settings", "is_active", "created_by", "updated_by").
		Values(row.ID, row.Title, row.Description, row.Page, row.Fields, row.EmailSettings, row.IsActive, row.CreatedBy, row.UpdatedBy).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildGetFormQuery(id string) (string, []any, error) {
	return psql.
		Select(formColumns...).
		From("forms").
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildGetActiveFormByPageQuery returns the oldest active form bound to page.
func buildGetActiveFormByPageQuery(page string) (string, []any, error) {
	return psql.
		Select(formColumns...).
		From("forms").
		Where(sq.Eq{"page": page, "is_active": true}).
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
}

func buildListFormsQuery() (string, []any, error) {
	return psql.
		Select(formColumns...).
		From("forms").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildUpdateFormQuery(row formRow) (string, []any, error) {
	return psql.
		Update("forms").
		Set("title", row.Title).
		Set("description", row.Description).
		Set("page", row.Page).
		Set("fields", row.Fields).
		Set("email_settings", row.EmailSettings).
		Set("is_active", row.IsActive).
		Set("updated_by", row.UpdatedBy).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": row.ID}).
		Suffix("RETURNING created_by, created_at, updated_at").
		ToSql()
}

func buildDeleteFormQuery(id string) (string, []any, error) {
	return psql.
		Delete("forms").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteSubmissionsByFormQuery(formID string) (string, []any, error) {
	return psql.
		Delete("form_submissions").
		Where(sq.Eq{"form_id": formID}).
		ToSql()
}

func buildInsertSubmissionQuery(id, formID string, data []byte, submittedBy, ipAddress, userAgent string) (string, []any, error) {
	return psql.
		Insert("form_submissions").
		Columns("id", "form_id", "data", "submitted_by", "ip_address", "user_agent").
		Values(id, formID, data, submittedBy, ipAddress, userAgent).
		Suffix("RETURNING created_at").
		ToSql()
}

// buildListSubmissionsQuery lists submissions of the given forms newest-first.
func buildListSubmissionsQuery(formIDs ...string) (string, []any, error) {
	query := psql.
		Select(submissionColumns...).
		From("form_submissions")

	if len(formIDs) == 1 {
		query = query.Where(sq.Eq{"form_id": formIDs[0]})
	} else {
		query = query.Where(sq.Eq{"form_id": formIDs})
	}

	return query.
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildGetSubmissionQuery(id string) (string, []any, error) {
	return psql.
		Select(submissionColumns...).
		From("form_submissions").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteSubmissionQuery(id string) (string, []any, error) {
	return psql.
		Delete("form_submissions").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertEmailTemplateQuery(template models.EmailTemplate) (string, []any, error) {
	return psql.
		Insert("email_templates").
		Columns("id", "name", "subject", "body").
		Values(template.ID, template.Name, template.Subject, template.Body).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildGetEmailTemplateQuery(id string) (string, []any, error) {
	return psql.
		Select(emailTemplateColumns...).
		From("email_templates").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListEmailTemplatesQuery() (string, []any, error) {
	return psql.
		Select(emailTemplateColumns...).
		From("email_templates").
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func buildDeleteEmailTemplateQuery(id string) (string, []any, error) {
	return psql.
		Delete("email_templates").
		Where(sq.Eq{"id": id}).
		ToSql()
}
