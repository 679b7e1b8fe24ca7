package health

import (
	"net/http"

	"github.com/dmitrymomot/spellbook/core/handler"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK.
func Liveness[S any](handler.Context[S]) (handler.Response, error) {
	return handler.Text(http.StatusOK, "ALIVE"), nil
}

// NoContent returns 204 without body. Ideal for high-frequency checks.
func NoContent[S any](handler.Context[S]) (handler.Response, error) {
	return handler.NoContent(), nil
}
