package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/utils"
	"github.com/arenacast/backend/models"
)

// withRecovery intercepts panics escaping protected handlers, logs them with
// the originating method and path, and answers with a generic 500. The panic
// value is echoed to the client only in the development posture.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromRequest(r).Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Any("panic", rec).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered in handler")

				message := http.StatusText(http.StatusInternalServerError)
				if h.devMode {
					message = fmt.Sprintf("%v", rec)
				}
				utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
