package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/store"
)

// EventHandler serves the events resource. Writes are gated on the organizer
// existing in the users service and carrying the organizer flag; the two
// rejection reasons stay distinct, and an unreachable users service is a
// dependency failure, not a missing user.
type EventHandler struct {
	Store    *store.Store[*model.Event]
	Peers    Verifier
	UsersURL string
}

// List handles GET /events.
func (h *EventHandler) List(c echo.Context) error {
	events, err := h.Store.LoadAll()
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("returning events", "count", len(events))
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Event not found")
	}
	event, found, err := h.Store.FindByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Event not found")
	}
	return c.JSON(http.StatusOK, event)
}

func (h *EventHandler) checkOrganizer(c echo.Context, organizerID int) (ok bool, err error) {
	ctx := c.Request().Context()
	correlation.Logger(ctx).Info("validating organizer against users service", "organizerId", organizerID)
	switch h.Peers.CheckOrganizer(ctx, h.UsersURL, organizerID) {
	case peer.OrganizerNotFound:
		return false, errJSON(c, http.StatusNotFound, "User not found")
	case peer.NotOrganizer:
		return false, errJSON(c, http.StatusBadRequest, "User is not an organizer")
	case peer.OrganizerUnreachable:
		return false, errJSON(c, http.StatusInternalServerError, "Unable to verify organizer")
	}
	return true, nil
}

// Create handles POST /events.
func (h *EventHandler) Create(c echo.Context) error {
	var payload model.EventPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkOrganizer(c, *payload.OrganizerID); !ok {
		return err
	}
	event, err := h.Store.Append(payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("event created", "id", event.ID)
	return c.JSON(http.StatusCreated, event)
}

// Update handles PUT /events/:id. The organizer is re-validated on every
// update.
func (h *EventHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Event not found")
	}
	var payload model.EventPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		correlation.Logger(c.Request().Context()).Info("invalid event data", "fields", len(errs))
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkOrganizer(c, *payload.OrganizerID); !ok {
		return err
	}
	event, found, err := h.Store.UpdateByID(id, payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Event not found")
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /events/:id.
func (h *EventHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Event not found")
	}
	removed, err := h.Store.DeleteByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !removed {
		return errJSON(c, http.StatusNotFound, "Event not found")
	}
	return c.NoContent(http.StatusNoContent)
}
