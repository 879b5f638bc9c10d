package http

import (
	"net/http"

	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createForm(w http.ResponseWriter, r *http.Request) {
	var form models.Form
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.services.FormService.CreateForm(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, created, http.StatusCreated)
}

func (h *Handler) listForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.services.FormService.ListForms(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, forms, http.StatusOK)
}

func (h *Handler) getForm(w http.ResponseWriter, r *http.Request) {
	form, err := h.services.FormService.GetForm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, form.Public(), http.StatusOK)
}

func (h *Handler) getFormByPage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")

	form, err := h.services.FormService.GetFormByPage(r.Context(), page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("page", page).Str("form_id", form.ID).Msg("form resolved by page")
	writeResponse(w, r, form.Public(), http.StatusOK)
}

func (h *Handler) updateForm(w http.ResponseWriter, r *http.Request) {
	var patch models.FormPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.services.FormService.UpdateForm(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteForm(w http.ResponseWriter, r *http.Request) {
	if err := h.services.FormService.DeleteForm(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
