package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/store"
)

// UserHandler serves the users resource. Users reference nothing, so writes
// need no dependency checks; the is_organizer endpoint is what the events
// service calls to authorize an organizer.
type UserHandler struct {
	Store *store.Store[*model.User]
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.Store.LoadAll()
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("returning users", "count", len(users))
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	user, found, err := h.Store.FindByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// IsOrganizer handles GET /users/:id/is_organizer and answers a bare JSON
// boolean, the shape the events service expects.
func (h *UserHandler) IsOrganizer(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	user, found, err := h.Store.FindByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user.IsOrganizer)
}

// Create handles POST /users.
func (h *UserHandler) Create(c echo.Context) error {
	var payload model.UserPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		correlation.Logger(c.Request().Context()).Info("invalid user data", "fields", len(errs))
		return c.JSON(http.StatusBadRequest, errs)
	}
	user, err := h.Store.Append(payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("user created", "id", user.ID)
	return c.JSON(http.StatusCreated, user)
}

// Update handles PUT /users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	var payload model.UserPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	user, found, err := h.Store.UpdateByID(id, payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	removed, err := h.Store.DeleteByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !removed {
		return errJSON(c, http.StatusNotFound, "User not found")
	}
	return c.NoContent(http.StatusNoContent)
}
