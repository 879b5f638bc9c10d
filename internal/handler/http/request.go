package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/utils"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
)

// decodeJSON reads one JSON document from the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// submissionMetadata describes the submitter of r. The actor id is present
// only when the optional auth middleware accepted a token.
func submissionMetadata(r *http.Request) models.SubmissionMetadata {
	actorID, _ := utils.GetActorIDFromContext(r.Context())
	return models.SubmissionMetadata{
		SubmittedBy: actorID,
		IPAddress:   utils.ClientIP(r),
		UserAgent:   r.UserAgent(),
	}
}

type submitRequest struct {
	Data models.SubmissionData `json:"data"`
}
