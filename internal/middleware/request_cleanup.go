package middleware

import (
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// note forms are small; anything left beyond this is not worth reading
const maxDrainBytes = 64 << 10

// DrainAndCloseRequest drains what the notes handlers left unread in the
// request body (up to maxDrainBytes) and closes it, so the connection can be reused.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil || r.Body == http.NoBody {
				return
			}
			if _, err := io.CopyN(io.Discard, r.Body, maxDrainBytes); err != nil && err != io.EOF {
				log.Tracef("drain request body [%s %s]: %s", r.Method, r.URL.Path, err)
			}
			if err := r.Body.Close(); err != nil {
				log.Tracef("close request body [%s %s]: %s", r.Method, r.URL.Path, err)
			}
		})
	}
}
