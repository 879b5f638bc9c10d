package http

import (
	"net/http"

	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createEmailTemplate(w http.ResponseWriter, r *http.Request) {
	var template models.EmailTemplate
	if err := decodeJSON(w, r, &template); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.EmailTemplateService.CreateEmailTemplate(r.Context(), template)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, created, http.StatusCreated)
}

func (h *Handler) listEmailTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.services.EmailTemplateService.ListEmailTemplates(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, templates, http.StatusOK)
}

func (h *Handler) getEmailTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.services.EmailTemplateService.GetEmailTemplate(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, template, http.StatusOK)
}

func (h *Handler) deleteEmailTemplate(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EmailTemplateService.DeleteEmailTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
