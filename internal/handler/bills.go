package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/store"
)

// BillHandler serves the bills resource. Writes are gated on the billed user
// and the event resolving in their owning services, user first.
type BillHandler struct {
	Store     *store.Store[*model.Bill]
	Peers     Verifier
	UsersURL  string
	EventsURL string
}

// List handles GET /bills.
func (h *BillHandler) List(c echo.Context) error {
	bills, err := h.Store.LoadAll()
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("returning bills", "count", len(bills))
	return c.JSON(http.StatusOK, bills)
}

// Get handles GET /bills/:id.
func (h *BillHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Bill not found")
	}
	bill, found, err := h.Store.FindByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Bill not found")
	}
	return c.JSON(http.StatusOK, bill)
}

func (h *BillHandler) checkRefs(c echo.Context, p *model.BillPayload) (ok bool, err error) {
	ctx := c.Request().Context()
	log := correlation.Logger(ctx)

	log.Info("validating user against users service", "userId", *p.UserID)
	switch h.Peers.CheckExists(ctx, h.UsersURL, "users", *p.UserID) {
	case peer.NotFound:
		return false, errJSON(c, http.StatusNotFound, "User not found")
	case peer.Unreachable:
		return false, errJSON(c, http.StatusInternalServerError, "Unable to verify user")
	}

	log.Info("validating event against events service", "eventId", *p.EventID)
	switch h.Peers.CheckExists(ctx, h.EventsURL, "events", *p.EventID) {
	case peer.NotFound:
		return false, errJSON(c, http.StatusNotFound, "Event not found")
	case peer.Unreachable:
		return false, errJSON(c, http.StatusInternalServerError, "Unable to verify event")
	}
	return true, nil
}

// Create handles POST /bills.
func (h *BillHandler) Create(c echo.Context) error {
	var payload model.BillPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		correlation.Logger(c.Request().Context()).Info("invalid bill data", "fields", len(errs))
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkRefs(c, &payload); !ok {
		return err
	}
	bill, err := h.Store.Append(payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("bill created", "id", bill.ID)
	return c.JSON(http.StatusCreated, bill)
}

// Update handles PUT /bills/:id.
func (h *BillHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Bill not found")
	}
	var payload model.BillPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkRefs(c, &payload); !ok {
		return err
	}
	bill, found, err := h.Store.UpdateByID(id, payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Bill not found")
	}
	return c.JSON(http.StatusOK, bill)
}

// Delete handles DELETE /bills/:id.
func (h *BillHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Bill not found")
	}
	removed, err := h.Store.DeleteByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !removed {
		return errJSON(c, http.StatusNotFound, "Bill not found")
	}
	return c.NoContent(http.StatusNoContent)
}
