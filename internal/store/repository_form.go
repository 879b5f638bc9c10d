package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/jackc/pgerrcode"
)

// formRepository is the PostgreSQL-backed implementation of [FormRepository].
// Fields and email settings are stored as JSONB columns of the "forms" row.
type formRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewFormRepository constructs a [FormRepository] backed by the provided
// database connection and logger.
func NewFormRepository(db *DB, logger *logger.Logger) FormRepository {
	logger.Debug().Msg("creating form repository")
	return &formRepository{
		db:     db,
		logger: logger,
	}
}

// CreateForm inserts form and returns it with the server-assigned timestamps.
//
// Error handling:
//   - unique_violation (23505) on the active page index → [ErrActivePageConflict].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *formRepository) CreateForm(ctx context.Context, form models.Form) (models.Form, error) {
	log := logger.FromContext(ctx)

	row, err := encodeForm(form)
	if err != nil {
		log.Err(err).Str("func", "formRepository.CreateForm").Msg("failed to encode form")
		return models.Form{}, err
	}

	query, args, err := buildInsertFormQuery(row)
	if err != nil {
		log.Err(err).Str("func", "formRepository.CreateForm").Msg("failed to build query")
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&form.CreatedAt, &form.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "formRepository.CreateForm").
			Str("page", form.Page).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert form")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Form{}, ErrActivePageConflict
		}
		return models.Form{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Str("func", "formRepository.CreateForm").Str("form_id", form.ID).Msg("form created")
	return form, nil
}

// GetForm returns the form with the given id or [ErrFormNotFound].
func (r *formRepository) GetForm(ctx context.Context, id string) (models.Form, error) {
	query, args, err := buildGetFormQuery(id)
	if err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "formRepository.GetForm", query, args)
}

// GetActiveFormByPage returns the oldest active form bound to page, or
// [ErrFormNotFound] when the page has no active form.
func (r *formRepository) GetActiveFormByPage(ctx context.Context, page string) (models.Form, error) {
	query, args, err := buildGetActiveFormByPageQuery(page)
	if err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "formRepository.GetActiveFormByPage", query, args)
}

func (r *formRepository) getOne(ctx context.Context, funcName, query string, args []any) (models.Form, error) {
	log := logger.FromContext(ctx)

	form, err := scanForm(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			log.Debug().Str("func", funcName).Msg("form not found")
			return models.Form{}, ErrFormNotFound
		}
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("failed to read form")
		return models.Form{}, err
	}

	return form, nil
}

// ListForms returns every form, newest first.
func (r *formRepository) ListForms(ctx context.Context) ([]models.Form, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFormsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "formRepository.ListForms").Msg("failed to execute query for listing forms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	forms := make([]models.Form, 0, 16)
	for rows.Next() {
		form, scanErr := scanForm(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "formRepository.ListForms").Msg("failed to scan form row")
			return nil, scanErr
		}
		forms = append(forms, form)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "formRepository.ListForms").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return forms, nil
}

// UpdateForm overwrites every mutable column of the form identified by
// form.ID. Concurrent updates follow last-write-wins.
//
// Error handling:
//   - no row with that id → [ErrFormNotFound].
//   - unique_violation (23505) on the active page index → [ErrActivePageConflict].
func (r *formRepository) UpdateForm(ctx context.Context, form models.Form) (models.Form, error) {
	log := logger.FromContext(ctx)

	row, err := encodeForm(form)
	if err != nil {
		log.Err(err).Str("func", "formRepository.UpdateForm").Msg("failed to encode form")
		return models.Form{}, err
	}

	query, args, err := buildUpdateFormQuery(row)
	if err != nil {
		return models.Form{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&form.CreatedBy, &form.CreatedAt, &form.UpdatedAt)
	if err != nil {
		switch {
		case isNoRows(err):
			return models.Form{}, ErrFormNotFound
		case postgresError(err) == pgerrcode.UniqueViolation:
			log.Warn().Str("func", "formRepository.UpdateForm").Str("page", form.Page).Msg("active page conflict")
			return models.Form{}, ErrActivePageConflict
		}
		log.Err(err).
			Str("func", "formRepository.UpdateForm").
			Str("form_id", form.ID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to update form")
		return models.Form{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return form, nil
}

// DeleteForm removes all submissions of the form and then the form itself,
// in one transaction. When the form does not exist nothing is deleted and
// [ErrFormNotFound] is returned.
func (r *formRepository) DeleteForm(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	deleteSubmissions, submissionArgs, err := buildDeleteSubmissionsByFormQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteForm, formArgs, err := buildDeleteFormQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "formRepository.DeleteForm").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, deleteSubmissions, submissionArgs...)
	if err != nil {
		if isNoRows(err) {
			return ErrFormNotFound
		}
		log.Err(err).Str("func", "formRepository.DeleteForm").Str("form_id", id).Msg("failed to delete submissions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	deletedSubmissions, _ := result.RowsAffected()

	result, err = tx.ExecContext(ctx, deleteForm, formArgs...)
	if err != nil {
		log.Err(err).Str("func", "formRepository.DeleteForm").Str("form_id", id).Msg("failed to delete form")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deletedForms, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if deletedForms == 0 {
		return ErrFormNotFound
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "formRepository.DeleteForm").Str("form_id", id).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Info().
		Str("func", "formRepository.DeleteForm").
		Str("form_id", id).
		Int64("deleted_submissions", deletedSubmissions).
		Msg("form deleted")

	return nil
}

func encodeForm(form models.Form) (formRow, error) {
	fields := form.Fields
	if fields == nil {
		fields = []models.Field{}
	}

	encodedFields, err := json.Marshal(fields)
	if err != nil {
		return formRow{}, fmt.Errorf("%w: fields: %w", ErrEncodingDocument, err)
	}
	encodedSettings, err := json.Marshal(form.EmailSettings)
	if err != nil {
		return formRow{}, fmt.Errorf("%w: email settings: %w", ErrEncodingDocument, err)
	}

	return formRow{
		ID:            form.ID,
		Title:         form.Title,
		Description:   form.Description,
		Page:          form.Page,
		Fields:        encodedFields,
		EmailSettings: encodedSettings,
		IsActive:      form.IsActive,
		CreatedBy:     form.CreatedBy,
		UpdatedBy:     form.UpdatedBy,
	}, nil
}

func scanForm(s rowScanner) (models.Form, error) {
	var (
		form          models.Form
		fields        []byte
		emailSettings []byte
	)

	err := s.Scan(
		&form.ID,
		&form.Title,
		&form.Description,
		&form.Page,
		&fields,
		&emailSettings,
		&form.IsActive,
		&form.CreatedBy,
		&form.UpdatedBy,
		&form.CreatedAt,
		&form.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return models.Form{}, err
		}
		return models.Form{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(fields, &form.Fields); err != nil {
		return models.Form{}, fmt.Errorf("%w: fields: %w", ErrEncodingDocument, err)
	}
	if err = json.Unmarshal(emailSettings, &form.EmailSettings); err != nil {
		return models.Form{}, fmt.Errorf("%w: email settings: %w", ErrEncodingDocument, err)
	}

	return form, nil
}
