package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/internal/validators"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBookID = "0190b1a2-7c3d-7e4f-8a9b-0c1d2e3f4a5b"

func sampleBook() models.Book {
	return models.Book{
		ID:          testBookID,
		Title:       "Dune",
		AuthorID:    "author-1",
		Author:      &models.AuthorSummary{ID: "author-1", FirstName: "Frank", LastName: "Herbert"},
		ISBN:        "978-0441013593",
		PublishYear: 1965,
		Genre:       "Science fiction",
		Description: "Desert planet",
		PageCount:   412,
		Language:    "English",
		Publisher:   "Chilton",
		Available:   true,
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ─────────────────────────────────────────────
// public reads
// ─────────────────────────────────────────────

func TestListBooks(t *testing.T) {
	router, m := newTestRouter(t)
	m.books.EXPECT().ListBooks(gomock.Any()).Return([]models.Book{sampleBook()}, nil)

	rec := doRequest(router, http.MethodGet, "/books", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Dune", got[0]["title"])
	assert.Equal(t, map[string]any{"id": "author-1", "firstName": "Frank", "lastName": "Herbert"}, got[0]["author"])
}

func TestListBooks_EmptyIsArray(t *testing.T) {
	router, m := newTestRouter(t)
	m.books.EXPECT().ListBooks(gomock.Any()).Return(nil, nil)

	rec := doRequest(router, http.MethodGet, "/books/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetBook(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "found", wantStatus: http.StatusOK},
		{
			name:        "malformed id",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidBookID),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid book ID format",
		},
		{name: "missing", err: store.ErrBookNotFound, wantStatus: http.StatusNotFound, wantMessage: "Book not found"},
		{name: "storage", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.books.EXPECT().GetBook(gomock.Any(), testBookID).Return(sampleBook(), tt.err)

			rec := doRequest(router, http.MethodGet, "/books/"+testBookID, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
			}
		})
	}
}

// ─────────────────────────────────────────────
// guarded writes
// ─────────────────────────────────────────────

func TestCreateBook(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	available := false
	m.books.EXPECT().CreateBook(gomock.Any(), models.BookInput{
		Title:       "Dune",
		Author:      "author-1",
		ISBN:        "978-0441013593",
		PublishYear: 1965,
		Genre:       "Science fiction",
		Description: "Desert planet",
		PageCount:   412,
		Language:    "English",
		Publisher:   "Chilton",
		Available:   &available,
	}).Return(sampleBook(), nil)

	rec := doRequest(router, http.MethodPost, "/books", `{
		"title":"Dune","author":"author-1","isbn":"978-0441013593","publishYear":1965,
		"genre":"Science fiction","description":"Desert planet","pageCount":412,
		"language":"English","publisher":"Chilton","available":false}`,
		"Authorization", bearer)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"`+testBookID+`"`)
}

func TestCreateBook_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing fields",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingRequiredFields),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All fields are required",
		},
		{
			name:        "malformed author id",
			err:         fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidAuthorID),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid author ID format",
		},
		{
			name:        "unknown author is a bad request",
			err:         fmt.Errorf("%w: %w", service.ErrBookAuthorNotFound, store.ErrAuthorNotFound),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Author not found",
		},
		{
			name:        "duplicate isbn",
			err:         store.ErrISBNAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "A book with this ISBN already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			expectAuthenticated(m, regularUser)
			m.books.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(models.Book{}, tt.err)

			rec := doRequest(router, http.MethodPost, "/books", `{"title":"Dune"}`, "Authorization", bearer)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestCreateBook_RequiresToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/books", `{"title":"Dune"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateBook_PartialFields(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	title := "Dune Messiah"
	updated := sampleBook()
	updated.Title = title
	m.books.EXPECT().UpdateBook(gomock.Any(), models.BookUpdate{ID: testBookID, Title: &title}).Return(updated, nil)

	rec := doRequest(router, http.MethodPut, "/books/"+testBookID, `{"title":"Dune Messiah"}`, "Authorization", bearer)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Dune Messiah"`)
}

func TestUpdateBook_NotFound(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)
	m.books.EXPECT().UpdateBook(gomock.Any(), gomock.Any()).Return(models.Book{}, store.ErrBookNotFound)

	rec := doRequest(router, http.MethodPut, "/books/"+testBookID, `{"genre":"Epic"}`, "Authorization", bearer)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Book not found", decodeMessage(t, rec))
}

func TestDeleteBook_Admin(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, adminUser)
	m.books.EXPECT().DeleteBook(gomock.Any(), testBookID).Return(nil)

	rec := doRequest(router, http.MethodDelete, "/books/"+testBookID, "", "Authorization", bearer)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Book deleted successfully", decodeMessage(t, rec))
}

func TestDeleteBook_RegularUserForbidden(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	rec := doRequest(router, http.MethodDelete, "/books/"+testBookID, "", "Authorization", bearer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "You do not have permission to perform this action", decodeMessage(t, rec))
}

func TestDeleteBook_NotFound(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, adminUser)
	m.books.EXPECT().DeleteBook(gomock.Any(), testBookID).Return(store.ErrBookNotFound)

	rec := doRequest(router, http.MethodDelete, "/books/"+testBookID, "", "Authorization", bearer)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
