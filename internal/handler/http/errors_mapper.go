package http

import (
	"errors"
	"net/http"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/service"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/store"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/validators"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrInvalidContentEncoding:     http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrRouteNotFound:              http.StatusNotFound,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrValidation:         http.StatusBadRequest,
	validators.ErrDuplicateFieldName: http.StatusConflict,

	store.ErrFormNotFound:          http.StatusNotFound,
	store.ErrSubmissionNotFound:    http.StatusNotFound,
	store.ErrEmailTemplateNotFound: http.StatusNotFound,
	store.ErrActivePageConflict:    http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingDocument:     http.StatusInternalServerError,
}

// statusFromError returns the status mapped to the first known sentinel
// wrapped by err, together with that sentinel. Unknown errors map to 500.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError logs err and writes it as a models.ErrorResponse. Client errors
// expose the sentinel message and, for validation failures, every
// violation. Server errors expose only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	response := models.ErrorResponse{Message: http.StatusText(status)}
	if status < http.StatusInternalServerError && target != nil {
		response.Message = target.Error()
		response.Errors = validators.ViolationsOf(err)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, response, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}

// writeResponse writes data as JSON with status.
func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
