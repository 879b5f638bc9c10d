package store

import (
	"context"
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// emailTemplateRepository is the PostgreSQL-backed implementation of
// [EmailTemplateRepository].
type emailTemplateRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewEmailTemplateRepository(db *DB, logger *logger.Logger) EmailTemplateRepository {
	logger.Debug().Msg("creating email template repository")
	return &emailTemplateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *emailTemplateRepository) CreateEmailTemplate(ctx context.Context, template models.EmailTemplate) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEmailTemplateQuery(template)
	if err != nil {
		return models.EmailTemplate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&template.CreatedAt, &template.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "emailTemplateRepository.CreateEmailTemplate").
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert email template")
		return models.EmailTemplate{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return template, nil
}

func (r *emailTemplateRepository) GetEmailTemplate(ctx context.Context, id string) (models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEmailTemplateQuery(id)
	if err != nil {
		return models.EmailTemplate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	template, err := scanEmailTemplate(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.EmailTemplate{}, ErrEmailTemplateNotFound
		}
		log.Err(err).Str("func", "emailTemplateRepository.GetEmailTemplate").Str("template_id", id).Msg("failed to read email template")
		return models.EmailTemplate{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return template, nil
}

func (r *emailTemplateRepository) ListEmailTemplates(ctx context.Context) ([]models.EmailTemplate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEmailTemplatesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "emailTemplateRepository.ListEmailTemplates").Msg("failed to execute query for listing email templates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	templates := make([]models.EmailTemplate, 0, 8)
	for rows.Next() {
		template, scanErr := scanEmailTemplate(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "emailTemplateRepository.ListEmailTemplates").Msg("failed to scan email template row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		templates = append(templates, template)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return templates, nil
}

func (r *emailTemplateRepository) DeleteEmailTemplate(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEmailTemplateQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isNoRows(err) {
			return ErrEmailTemplateNotFound
		}
		log.Err(err).Str("func", "emailTemplateRepository.DeleteEmailTemplate").Str("template_id", id).Msg("failed to delete email template")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEmailTemplateNotFound
	}

	return nil
}

func scanEmailTemplate(s rowScanner) (models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := s.Scan(&template.ID, &template.Name, &template.Subject, &template.Body, &template.CreatedAt, &template.UpdatedAt)
	return template, err
}
