package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.services.SubmissionService.Submit(r.Context(), chi.URLParam(r, "id"), req.Data, submissionMetadata(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, submission, http.StatusCreated)
}

func (h *Handler) listSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.services.SubmissionService.ListByForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, submissions, http.StatusOK)
}

func (h *Handler) getSubmission(w http.ResponseWriter, r *http.Request) {
	submission, err := h.services.SubmissionService.GetSubmission(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, submission, http.StatusOK)
}

func (h *Handler) deleteSubmission(w http.ResponseWriter, r *http.Request) {
	if err := h.services.SubmissionService.DeleteSubmission(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
