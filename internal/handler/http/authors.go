package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-api/internal/app"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) {
	authors, err := h.services.AuthorService.ListAuthors(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if authors == nil {
		authors = []models.Author{}
	}

	utils.WriteJSON(w, authors, http.StatusOK)
}

func (h *Handler) getAuthor(w http.ResponseWriter, r *http.Request) {
	author, err := h.services.AuthorService.GetAuthor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, author, http.StatusOK)
}

func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) {
	var in models.Author
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	author, err := h.services.AuthorService.CreateAuthor(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", author.ID).Str("last_name", author.LastName).Msg("author created")
	utils.WriteJSON(w, author, http.StatusCreated)
}

func (h *Handler) updateAuthor(w http.ResponseWriter, r *http.Request) {
	var update models.AuthorUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = chi.URLParam(r, "id")

	author, err := h.services.AuthorService.UpdateAuthor(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, author, http.StatusOK)
}

func (h *Handler) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.AuthorService.DeleteAuthor(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("author deleted")
	utils.WriteMessage(w, app.MsgAuthorDeleted, http.StatusOK)
}
