package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/store"
)

// NotificationHandler serves the notifications resource. Every id in the
// payload's users list must resolve in the users service, checked in list
// order; the first miss rejects the whole write so nothing is partially
// persisted.
type NotificationHandler struct {
	Store    *store.Store[*model.Notification]
	Peers    Verifier
	UsersURL string
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.Store.LoadAll()
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("returning notifications", "count", len(notifications))
	return c.JSON(http.StatusOK, notifications)
}

// Get handles GET /notifications/:id.
func (h *NotificationHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Notification not found")
	}
	notification, found, err := h.Store.FindByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Notification not found")
	}
	return c.JSON(http.StatusOK, notification)
}

func (h *NotificationHandler) checkUsers(c echo.Context, refs []model.UserRef) (ok bool, err error) {
	ctx := c.Request().Context()
	log := correlation.Logger(ctx)
	for _, ref := range refs {
		log.Info("validating user against users service", "userId", ref.ID)
		switch h.Peers.CheckExists(ctx, h.UsersURL, "users", ref.ID) {
		case peer.NotFound:
			log.Info("referenced user not found", "userId", ref.ID)
			return false, errJSON(c, http.StatusNotFound, fmt.Sprintf("User with id %d not found", ref.ID))
		case peer.Unreachable:
			return false, errJSON(c, http.StatusInternalServerError, fmt.Sprintf("Unable to verify user %d", ref.ID))
		}
	}
	return true, nil
}

// Create handles POST /notifications.
func (h *NotificationHandler) Create(c echo.Context) error {
	var payload model.NotificationPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		correlation.Logger(c.Request().Context()).Info("invalid notification data", "fields", len(errs))
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkUsers(c, *payload.Users); !ok {
		return err
	}
	notification, err := h.Store.Append(payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("notification created", "id", notification.ID)
	return c.JSON(http.StatusCreated, notification)
}

// Update handles PUT /notifications/:id.
func (h *NotificationHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Notification not found")
	}
	var payload model.NotificationPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkUsers(c, *payload.Users); !ok {
		return err
	}
	notification, found, err := h.Store.UpdateByID(id, payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Notification not found")
	}
	return c.JSON(http.StatusOK, notification)
}

// Delete handles DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Notification not found")
	}
	removed, err := h.Store.DeleteByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !removed {
		return errJSON(c, http.StatusNotFound, "Notification not found")
	}
	return c.NoContent(http.StatusNoContent)
}
