package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/jackc/pgerrcode"
)

// submissionRepository is the PostgreSQL-backed implementation of
// [SubmissionRepository]. Submitted data is stored as a JSONB column of the
// "form_submissions" table.
type submissionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by the
// provided database connection and logger.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSubmission inserts submission and returns it with its server-assigned
// timestamp. A foreign key violation means the form was deleted meanwhile and
// is reported as [ErrFormNotFound].
func (r *submissionRepository) CreateSubmission(ctx context.Context, submission models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	data := submission.Data
	if data == nil {
		data = models.SubmissionData{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		log.Err(err).Str("func", "submissionRepository.CreateSubmission").Msg("failed to encode submission data")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := buildInsertSubmissionQuery(submission.ID, submission.FormID, encoded, submission.SubmittedBy, submission.IPAddress, submission.UserAgent)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&submission.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			log.Warn().Str("func", "submissionRepository.CreateSubmission").Str("form_id", submission.FormID).Msg("form no longer exists")
			return models.Submission{}, ErrFormNotFound
		}
		log.Err(err).
			Str("func", "submissionRepository.CreateSubmission").
			Str("form_id", submission.FormID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to insert submission")
		return models.Submission{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	submission.Data = data
	return submission, nil
}

// ListSubmissionsByForm returns the submissions of one form, newest first.
// An unknown form yields an empty slice.
func (r *submissionRepository) ListSubmissionsByForm(ctx context.Context, formID string) ([]models.Submission, error) {
	query, args, err := buildListSubmissionsQuery(formID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.list(ctx, "submissionRepository.ListSubmissionsByForm", query, args)
}

// ListSubmissionsByForms loads the submissions of all given forms with one
// query and groups them by form id.
func (r *submissionRepository) ListSubmissionsByForms(ctx context.Context, formIDs []string) (map[string][]models.Submission, error) {
	grouped := make(map[string][]models.Submission, len(formIDs))
	if len(formIDs) == 0 {
		return grouped, nil
	}

	query, args, err := buildListSubmissionsQuery(formIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	submissions, err := r.list(ctx, "submissionRepository.ListSubmissionsByForms", query, args)
	if err != nil {
		return nil, err
	}

	for _, submission := range submissions {
		grouped[submission.FormID] = append(grouped[submission.FormID], submission)
	}

	return grouped, nil
}

func (r *submissionRepository) list(ctx context.Context, funcName, query string, args []any) ([]models.Submission, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if isNoRows(err) {
			return []models.Submission{}, nil
		}
		log.Err(err).Str("func", funcName).Msg("failed to execute query for listing submissions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	submissions := make([]models.Submission, 0, 32)
	for rows.Next() {
		submission, scanErr := scanSubmission(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan submission row")
			return nil, scanErr
		}
		submissions = append(submissions, submission)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return submissions, nil
}

// GetSubmission returns one submission or [ErrSubmissionNotFound].
func (r *submissionRepository) GetSubmission(ctx context.Context, id string) (models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSubmissionQuery(id)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	submission, err := scanSubmission(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return models.Submission{}, ErrSubmissionNotFound
		}
		log.Err(err).Str("func", "submissionRepository.GetSubmission").Str("submission_id", id).Msg("failed to read submission")
		return models.Submission{}, err
	}

	return submission, nil
}

// DeleteSubmission removes one submission. Deleting a missing id returns
// [ErrSubmissionNotFound].
func (r *submissionRepository) DeleteSubmission(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSubmissionQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isNoRows(err) {
			return ErrSubmissionNotFound
		}
		log.Err(err).Str("func", "submissionRepository.DeleteSubmission").Str("submission_id", id).Msg("failed to delete submission")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}

func scanSubmission(s rowScanner) (models.Submission, error) {
	var (
		submission models.Submission
		data       []byte
	)

	err := s.Scan(
		&submission.ID,
		&submission.FormID,
		&data,
		&submission.SubmittedBy,
		&submission.IPAddress,
		&submission.UserAgent,
		&submission.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return models.Submission{}, err
		}
		return models.Submission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(data, &submission.Data); err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return submission, nil
}
