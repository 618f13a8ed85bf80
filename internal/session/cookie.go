package session

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-library-api/internal/utils"
)

// CookieName is the name of the cookie carrying the signed session id.
const CookieName = "library_session"

// Cookies writes and reads the session cookie. The session id is signed
// with HMAC-SHA256 so that a client cannot address someone else's session
// by guessing ids.
type Cookies struct {
	signKey string
	secure  bool
	ttl     time.Duration
}

func NewCookies(signKey string, secure bool, ttl time.Duration) *Cookies {
	return &Cookies{signKey: signKey, secure: secure, ttl: ttl}
}

// Set attaches the session cookie for id to w.
func (c *Cookies) Set(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    utils.SignValue(id, c.signKey),
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read returns the session id carried by r. A missing cookie or a bad
// signature yields ErrInvalidCookie.
func (c *Cookies) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", ErrInvalidCookie
	}

	id, ok := utils.VerifySignedValue(cookie.Value, c.signKey)
	if !ok {
		return "", ErrInvalidCookie
	}

	return id, nil
}

// Clear expires the session cookie on the client.
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
