package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookies_SetRead(t *testing.T) {
	c := NewCookies("sign-key", true, 10*time.Minute)

	rec := httptest.NewRecorder()
	c.Set(rec, "session-1")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 600, cookie.MaxAge)
	assert.NotEqual(t, "session-1", cookie.Value, "the id is signed")

	req := httptest.NewRequest(http.MethodGet, "/auth/github/callback", nil)
	req.AddCookie(cookie)

	id, err := c.Read(req)
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)
}

func TestCookies_Read_Missing(t *testing.T) {
	c := NewCookies("sign-key", false, time.Minute)

	_, err := c.Read(httptest.NewRequest(http.MethodGet, "/", nil))
	require.ErrorIs(t, err, ErrInvalidCookie)
}

func TestCookies_Read_Tampered(t *testing.T) {
	signer := NewCookies("another-key", false, time.Minute)
	c := NewCookies("sign-key", false, time.Minute)

	rec := httptest.NewRecorder()
	signer.Set(rec, "session-1")

	for _, value := range []string{rec.Result().Cookies()[0].Value, "session-1", "session-1.", "session-1.zz"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: value})

		_, err := c.Read(req)
		assert.ErrorIs(t, err, ErrInvalidCookie, value)
	}
}

func TestCookies_Clear(t *testing.T) {
	c := NewCookies("sign-key", false, time.Minute)

	rec := httptest.NewRecorder()
	c.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
