package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// CookieCodec writes and reads the session cookie. The cookie value is
// "token.signature" where the signature is an HMAC-SHA256 of the token under
// the configured signing key. The signature authenticates the cookie blob in
// transit; it is stripped before the token reaches the session authority, so
// authorization semantics stay a bare token comparison.
type CookieCodec struct {
	signKey []byte
}

// NewCookieCodec constructs a [CookieCodec] signing with signKey.
func NewCookieCodec(signKey string) *CookieCodec {
	return &CookieCodec{signKey: []byte(signKey)}
}

// Set attaches the session cookie carrying token to the response.
func (c *CookieCodec) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token + "." + c.sign(token),
		Path:     "/",
		HttpOnly: true,
	})
}

// Token extracts and verifies the session token from the request's cookie.
// A missing cookie, a malformed value, or a bad signature all yield the
// empty string, which the authority treats as an absent session.
func (c *CookieCodec) Token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}

	parts := strings.Split(cookie.Value, ".")
	if len(parts) != 2 {
		return ""
	}

	token, signature := parts[0], parts[1]
	if !hmac.Equal([]byte(signature), []byte(c.sign(token))) {
		return ""
	}

	return token
}

// Clear expires the session cookie on the response.
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (c *CookieCodec) sign(token string) string {
	mac := hmac.New(sha256.New, c.signKey)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
