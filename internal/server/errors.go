package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/skillsync/internal/gap"
)

// HTTPStatus returns the appropriate HTTP status code for an error surfaced
// by the core packages.
func HTTPStatus(err error) int {
	var notFound *gap.RoleNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
