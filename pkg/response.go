package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON marshals v and writes it with the given status.
// A value that cannot be marshalled results in a 500.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	resJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("marshal %T response: %s", v, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	WriteResponseBytes(w, status, ContentTypeJSON, resJson)
}

func WriteText(w http.ResponseWriter, status int, message string) {
	WriteResponseBytes(w, status, ContentTypeText, []byte(message))
}

func WriteResponseBytes(w http.ResponseWriter, status int, contentType string, message []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)

	// the client is usually gone by now, nothing left to report to
	if _, err := w.Write(message); err != nil {
		log.Debugf("write %d response (%d bytes): %s", status, len(message), err)
	}
}
