package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-library-api/internal/service"
	"github.com/MKhiriev/go-library-api/internal/store"
	"github.com/MKhiriev/go-library-api/internal/validators"
	"github.com/MKhiriev/go-library-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAuthorID = "0190b1a2-7c3d-7e4f-8a9b-aaaaaaaaaaaa"

func sampleAuthor(t *testing.T) models.Author {
	t.Helper()
	birth, err := models.ParseDate("1920-10-08")
	require.NoError(t, err)

	return models.Author{
		ID:          testAuthorID,
		FirstName:   "Frank",
		LastName:    "Herbert",
		Biography:   "American author",
		BirthDate:   birth,
		Nationality: "American",
	}
}

func TestListAuthors(t *testing.T) {
	router, m := newTestRouter(t)
	m.authors.EXPECT().ListAuthors(gomock.Any()).Return([]models.Author{sampleAuthor(t)}, nil)

	rec := doRequest(router, http.MethodGet, "/authors", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"birthDate":"1920-10-08"`)
}

func TestGetAuthor_NotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.authors.EXPECT().GetAuthor(gomock.Any(), testAuthorID).Return(models.Author{}, store.ErrAuthorNotFound)

	rec := doRequest(router, http.MethodGet, "/authors/"+testAuthorID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Author not found", decodeMessage(t, rec))
}

func TestGetAuthor_MalformedID(t *testing.T) {
	router, m := newTestRouter(t)
	m.authors.EXPECT().GetAuthor(gomock.Any(), "42").
		Return(models.Author{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidAuthorID))

	rec := doRequest(router, http.MethodGet, "/authors/42", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid author ID format", decodeMessage(t, rec))
}

func TestCreateAuthor(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	want := sampleAuthor(t)
	want.ID = ""
	m.authors.EXPECT().CreateAuthor(gomock.Any(), want).Return(sampleAuthor(t), nil)

	rec := doRequest(router, http.MethodPost, "/authors", `{
		"firstName":"Frank","lastName":"Herbert","biography":"American author",
		"birthDate":"1920-10-08","nationality":"American"}`,
		"Authorization", bearer)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), testAuthorID)
}

func TestCreateAuthor_InvalidBirthDate(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	rec := doRequest(router, http.MethodPost, "/authors", `{"firstName":"Frank","birthDate":"not-a-date"}`, "Authorization", bearer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid birth date format", decodeMessage(t, rec))
}

func TestUpdateAuthor(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	nationality := "US"
	m.authors.EXPECT().UpdateAuthor(gomock.Any(), models.AuthorUpdate{ID: testAuthorID, Nationality: &nationality}).
		Return(sampleAuthor(t), nil)

	rec := doRequest(router, http.MethodPut, "/authors/"+testAuthorID, `{"nationality":"US"}`, "Authorization", bearer)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateAuthor_NothingToUpdate(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)
	m.authors.EXPECT().UpdateAuthor(gomock.Any(), models.AuthorUpdate{ID: testAuthorID}).Return(models.Author{}, store.ErrNothingToUpdate)

	rec := doRequest(router, http.MethodPut, "/authors/"+testAuthorID, `{}`, "Authorization", bearer)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteAuthor(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantMessage: "Author deleted successfully"},
		{
			name:        "still has books",
			err:         store.ErrAuthorHasBooks,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Cannot delete author with associated books. Delete the books first or reassign them to another author.",
		},
		{name: "missing", err: store.ErrAuthorNotFound, wantStatus: http.StatusNotFound, wantMessage: "Author not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			expectAuthenticated(m, adminUser)
			m.authors.EXPECT().DeleteAuthor(gomock.Any(), testAuthorID).Return(tt.err)

			rec := doRequest(router, http.MethodDelete, "/authors/"+testAuthorID, "", "Authorization", bearer)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestDeleteAuthor_RegularUserForbidden(t *testing.T) {
	router, m := newTestRouter(t)
	expectAuthenticated(m, regularUser)

	rec := doRequest(router, http.MethodDelete, "/authors/"+testAuthorID, "", "Authorization", bearer)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
