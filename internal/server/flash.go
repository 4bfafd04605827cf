package server

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

// flashCookieName is the cookie carrying one-shot flash messages.
const flashCookieName = "jobrec_flash"

// setFlash queues messages to be shown on the next rendered page. Messages
// already queued on the request are preserved.
func setFlash(w http.ResponseWriter, r *http.Request, messages ...string) {
	pending := readFlash(r)
	pending = append(pending, messages...)

	payload, err := json.Marshal(pending)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// readFlash decodes the queued flash messages without clearing them.
func readFlash(r *http.Request) []string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var messages []string
	if err := json.Unmarshal(payload, &messages); err != nil {
		return nil
	}
	return messages
}

// popFlash returns the queued messages and clears the cookie. Flash messages
// are one-shot: rendering a page consumes them.
func popFlash(w http.ResponseWriter, r *http.Request) []string {
	messages := readFlash(r)
	if messages == nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return messages
}
