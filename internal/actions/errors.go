package actions

import (
	"errors"

	"github.com/arenacast/backend/internal/service"
	"github.com/arenacast/backend/internal/store"
)

// ErrNoCallerIdentity is returned when an action is invoked on a context
// that carries no attributed subject id.
var ErrNoCallerIdentity = errors.New("no caller identity in context")

// resultMessage renders a domain error as the user-facing message carried in
// an ActionResult. Conflicts and validation failures keep their own wording;
// everything else collapses to a generic failure, the same split the HTTP
// status mapping makes.
func resultMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrGamerTagTaken):
		return store.ErrGamerTagTaken.Error()
	case errors.Is(err, store.ErrProfileNotFound):
		return store.ErrProfileNotFound.Error()
	case errors.Is(err, service.ErrInvalidDataProvided):
		return service.ErrInvalidDataProvided.Error()
	}
	return "profile sync failed"
}
