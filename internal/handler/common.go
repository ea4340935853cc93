// Package handler implements the HTTP handlers of every service in the mesh.
// Each entity gets one handler struct wired with its record store and, where
// the entity references peers, a Verifier for the dependency checks. Errors
// are translated to HTTP at the point of detection; nothing is retried.
package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
)

// Verifier is the slice of the peer client the handlers need. Tests inject
// fakes; production wires *peer.Client.
type Verifier interface {
	CheckExists(ctx context.Context, baseURL, resource string, id int) peer.Status
	CheckOrganizer(ctx context.Context, usersBaseURL string, id int) peer.OrganizerStatus
}

// Health reports liveness for load balancers and the compose healthchecks.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// bindJSON decodes the request body into v and reports malformed input as
// per-field messages, so a mistyped field is rejected with the same shape as
// a missing one.
func bindJSON(c echo.Context, v any) model.ValidationErrors {
	if err := json.NewDecoder(c.Request().Body).Decode(v); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
			return model.ValidationErrors{typeErr.Field: {"Not a valid " + typeName(typeErr.Type) + "."}}
		}
		return model.ValidationErrors{"_schema": {"Invalid input type."}}
	}
	return nil
}

func typeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "list"
	default:
		return "value"
	}
}

// pathID parses the :id route parameter. The original routes only matched
// integer ids, so a non-numeric id reads as "no such record".
func pathID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}
