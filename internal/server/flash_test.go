package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// carryCookies copies response cookies onto a new request, like a browser would.
func carryCookies(req *http.Request, rec *httptest.ResponseRecorder) {
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
}

func TestFlashSetAndPop(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	setFlash(rec, req, "Registration successful! Please log in.")

	next := httptest.NewRequest(http.MethodGet, "/login", nil)
	carryCookies(next, rec)

	rec2 := httptest.NewRecorder()
	messages := popFlash(rec2, next)
	require.Equal(t, []string{"Registration successful! Please log in."}, messages)

	// Popping clears the cookie
	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookieName, cleared[0].Name)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestFlashAccumulates(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/home", nil)
	setFlash(rec, req, "first")

	// A later request that carries the pending cookie keeps both messages
	next := httptest.NewRequest(http.MethodGet, "/home", nil)
	carryCookies(next, rec)
	rec2 := httptest.NewRecorder()
	setFlash(rec2, next, "second")

	final := httptest.NewRequest(http.MethodGet, "/home", nil)
	carryCookies(final, rec2)
	messages := popFlash(httptest.NewRecorder(), final)
	assert.Equal(t, []string{"first", "second"}, messages)
}

func TestFlashPopEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	assert.Nil(t, popFlash(httptest.NewRecorder(), req))
}

func TestFlashGarbageCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: "%%%not-base64%%%"})
	assert.Nil(t, popFlash(httptest.NewRecorder(), req))
}
