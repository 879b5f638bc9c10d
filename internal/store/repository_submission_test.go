package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSubmissionID = "01920b6c-7a51-7c3e-8f00-0000000000aa"

func newTestSubmissionRepo(t *testing.T) (*submissionRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &submissionRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreateSubmission(t *testing.T) {
	submission := models.Submission{
		ID:          testSubmissionID,
		FormID:      testFormID,
		Data:        models.SubmissionData{"name": "Asha"},
		SubmittedBy: "admin",
		IPAddress:   "203.0.113.7",
		UserAgent:   "curl/8",
	}

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		now := time.Now()

		mock.ExpectQuery("INSERT INTO form_submissions").
			WithArgs(testSubmissionID, testFormID, []byte(`{"name":"Asha"}`), "admin", "203.0.113.7", "curl/8").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(now))

		got, err := repo.CreateSubmission(context.Background(), submission)
		require.NoError(t, err)
		assert.Equal(t, now, got.CreatedAt)
		assert.Equal(t, submission.Data, got.Data)
	})

	t.Run("nil data stored as empty object", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		s := submission
		s.Data = nil

		mock.ExpectQuery("INSERT INTO form_submissions").
			WithArgs(testSubmissionID, testFormID, []byte(`{}`), "admin", "203.0.113.7", "curl/8").
			WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

		got, err := repo.CreateSubmission(context.Background(), s)
		require.NoError(t, err)
		assert.NotNil(t, got.Data)
	})

	t.Run("form deleted meanwhile", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("INSERT INTO form_submissions").WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

		_, err := repo.CreateSubmission(context.Background(), submission)
		require.ErrorIs(t, err, ErrFormNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("INSERT INTO form_submissions").WillReturnError(errors.New("boom"))

		_, err := repo.CreateSubmission(context.Background(), submission)
		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}

func submissionRows() *sqlmock.Rows {
	newer := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	older := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(submissionColumns).
		AddRow("s-2", testFormID, []byte(`{"n":2}`), "", "", "", newer).
		AddRow("s-1", testFormID, []byte(`{"n":1}`), "", "", "", older)
}

func TestListSubmissionsByForm(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM form_submissions WHERE form_id = \\$1 ORDER BY created_at DESC, id DESC").
			WithArgs(testFormID).
			WillReturnRows(submissionRows())

		got, err := repo.ListSubmissionsByForm(context.Background(), testFormID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "s-2", got[0].ID)
		assert.Equal(t, float64(2), got[0].Data["n"])
		assert.Equal(t, "s-1", got[1].ID)
	})

	t.Run("malformed form id yields nothing", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM form_submissions").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

		got, err := repo.ListSubmissionsByForm(context.Background(), "x")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM form_submissions").WillReturnError(errors.New("boom"))

		_, err := repo.ListSubmissionsByForm(context.Background(), testFormID)
		require.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM form_submissions").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s-1"))

		_, err := repo.ListSubmissionsByForm(context.Background(), testFormID)
		require.ErrorIs(t, err, ErrScanningRow)
	})
}

func TestListSubmissionsByForms(t *testing.T) {
	t.Run("groups by form", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		now := time.Now()

		mock.ExpectQuery("SELECT (.+) FROM form_submissions WHERE form_id IN \\(\\$1,\\$2\\)").
			WithArgs("f-1", "f-2").
			WillReturnRows(sqlmock.NewRows(submissionColumns).
				AddRow("s-3", "f-2", []byte(`{}`), "", "", "", now).
				AddRow("s-2", "f-1", []byte(`{}`), "", "", "", now.Add(-time.Minute)).
				AddRow("s-1", "f-1", []byte(`{}`), "", "", "", now.Add(-time.Hour)))

		got, err := repo.ListSubmissionsByForms(context.Background(), []string{"f-1", "f-2"})
		require.NoError(t, err)
		require.Len(t, got["f-1"], 2)
		assert.Equal(t, "s-2", got["f-1"][0].ID)
		require.Len(t, got["f-2"], 1)
	})

	t.Run("no ids does not query", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)

		got, err := repo.ListSubmissionsByForms(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetSubmission(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM form_submissions WHERE id = \\$1").
			WithArgs("s-2").
			WillReturnRows(submissionRows())

		got, err := repo.GetSubmission(context.Background(), "s-2")
		require.NoError(t, err)
		assert.Equal(t, "s-2", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM form_submissions").WillReturnRows(sqlmock.NewRows(submissionColumns))

		_, err := repo.GetSubmission(context.Background(), testSubmissionID)
		require.ErrorIs(t, err, ErrSubmissionNotFound)
	})
}

func TestDeleteSubmission(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectExec("DELETE FROM form_submissions WHERE id = \\$1").
			WithArgs(testSubmissionID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.DeleteSubmission(context.Background(), testSubmissionID))
	})

	t.Run("missing id is not found", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectExec("DELETE FROM form_submissions").WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.DeleteSubmission(context.Background(), testSubmissionID), ErrSubmissionNotFound)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectExec("DELETE FROM form_submissions").WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

		require.ErrorIs(t, repo.DeleteSubmission(context.Background(), "nope"), ErrSubmissionNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestSubmissionRepo(t)
		mock.ExpectExec("DELETE FROM form_submissions").WillReturnError(errors.New("boom"))

		require.ErrorIs(t, repo.DeleteSubmission(context.Background(), testSubmissionID), ErrExecutingStatement)
	})
}
