package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCORS(t *testing.T) {
	h := middlewareCORS(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusTeapot)
	}), []string{"http://localhost:3000"})

	// Allowed origin
	rw := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ai/status", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	h.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusTeapot, rw.Code)
	assert.Equal(t, "http://localhost:3000", rw.Header().Get("Access-Control-Allow-Origin"))

	// Unknown origin
	rw = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/ai/status", nil)
	r.Header.Set("Origin", "http://evil.example")
	h.ServeHTTP(rw, r)
	assert.Empty(t, rw.Header().Get("Access-Control-Allow-Origin"))

	// Preflight
	rw = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodOptions, "/ai/start", nil)
	r.Header.Set("Origin", "http://localhost:3000")
	h.ServeHTTP(rw, r)
	assert.Equal(t, http.StatusNoContent, rw.Code)
	assert.Equal(t, "GET, POST, OPTIONS", rw.Header().Get("Access-Control-Allow-Methods"))
}

func TestEncodeAudio(t *testing.T) {
	assert.Nil(t, encodeAudio(nil))
	assert.Nil(t, encodeAudio([]byte{}))
	e := encodeAudio([]byte("abc"))
	if assert.NotNil(t, e) {
		assert.Equal(t, "YWJj", *e)
	}
}
