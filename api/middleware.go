package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sprintertech/frame-bridge/api/handlers"
)

// requestIDMiddleware assigns a request id to requests that don't carry one
// and echoes it in the response
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(handlers.REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.New().String()
			r.Header.Set(handlers.REQUEST_ID_HEADER, id)
		}
		w.Header().Set(handlers.REQUEST_ID_HEADER, id)

		next.ServeHTTP(w, r)
	})
}
