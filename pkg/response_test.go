package pkg

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusCreated, map[string]string{"id": "1", "title": "Groceries", "body": "milk, eggs"})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, ContentTypeJSON, rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"1","title":"Groceries","body":"milk, eggs"}`, rr.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteJSON(rr, http.StatusOK, map[string]any{"ch": make(chan int)})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "internal server error")
}

func TestWriteText(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteText(rr, http.StatusOK, "deleted:all")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, ContentTypeText, rr.Header().Get("Content-Type"))
	assert.Equal(t, "deleted:all", rr.Body.String())
}

func TestWriteResponseBytes_NoContentType(t *testing.T) {
	rr := httptest.NewRecorder()

	WriteResponseBytes(rr, http.StatusAccepted, "", []byte("ok"))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

type failingResponseWriter struct {
	*httptest.ResponseRecorder
}

func (w failingResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteResponseBytes_WriteError(t *testing.T) {
	w := failingResponseWriter{httptest.NewRecorder()}

	assert.NotPanics(t, func() {
		WriteText(w, http.StatusOK, "deleted:1")
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
