package http

import (
	"net/http"

	"github.com/MKhiriev/go-library-api/internal/app"
	"github.com/MKhiriev/go-library-api/internal/logger"
	"github.com/MKhiriev/go-library-api/internal/utils"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.services.BookService.GetBook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	var in models.BookInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	book, err := h.services.BookService.CreateBook(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", book.ID).Str("isbn", book.ISBN).Msg("book created")
	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	var update models.BookUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = chi.URLParam(r, "id")

	book, err := h.services.BookService.UpdateBook(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.BookService.DeleteBook(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("book deleted")
	utils.WriteMessage(w, app.MsgBookDeleted, http.StatusOK)
}
