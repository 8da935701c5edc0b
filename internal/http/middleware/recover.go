package middleware

import (
	"log"
	"net/http"
	"runtime/debug"

	"taskdeck/internal/http/respond"
)

// Recover replaces chi's Recoverer so the 500 body is the API envelope.
// The panic and stack stay in the server log; the client sees nothing else.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Printf("panic: %v\n%s", rec, debug.Stack())
				respond.Error(w, http.StatusInternalServerError, "Something went wrong!")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
