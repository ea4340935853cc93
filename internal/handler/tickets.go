package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/store"
)

// TicketHandler serves the tickets resource. Writes are gated on the buyer
// resolving in the users service and the event in the events service, buyer
// first; the first failure short-circuits.
type TicketHandler struct {
	Store     *store.Store[*model.Ticket]
	Peers     Verifier
	UsersURL  string
	EventsURL string
}

// List handles GET /tickets.
func (h *TicketHandler) List(c echo.Context) error {
	tickets, err := h.Store.LoadAll()
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("returning tickets", "count", len(tickets))
	return c.JSON(http.StatusOK, tickets)
}

// Get handles GET /tickets/:id.
func (h *TicketHandler) Get(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Ticket not found")
	}
	ticket, found, err := h.Store.FindByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Ticket not found")
	}
	return c.JSON(http.StatusOK, ticket)
}

// checkRefs validates the buyer and event references. When a reference does
// not pass, the rejection response has already been written and ok is false.
func (h *TicketHandler) checkRefs(c echo.Context, p *model.TicketPayload) (ok bool, err error) {
	ctx := c.Request().Context()
	log := correlation.Logger(ctx)

	log.Info("validating buyer against users service", "buyerId", *p.BuyerID)
	switch h.Peers.CheckExists(ctx, h.UsersURL, "users", *p.BuyerID) {
	case peer.NotFound:
		return false, errJSON(c, http.StatusNotFound, "Buyer not found")
	case peer.Unreachable:
		return false, errJSON(c, http.StatusInternalServerError, "Unable to verify buyer")
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

// Create handles POST /tickets.
func (h *TicketHandler) Create(c echo.Context) error {
	var payload model.TicketPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		correlation.Logger(c.Request().Context()).Info("invalid ticket data", "fields", len(errs))
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkRefs(c, &payload); !ok {
		return err
	}
	ticket, err := h.Store.Append(payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	correlation.Logger(c.Request().Context()).Info("ticket created", "id", ticket.ID)
	return c.JSON(http.StatusCreated, ticket)
}

// Update handles PUT /tickets/:id. Dependency validation runs before the
// local existence check, as on create.
func (h *TicketHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Ticket not found")
	}
	var payload model.TicketPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.Validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if ok, err := h.checkRefs(c, &payload); !ok {
		return err
	}
	ticket, found, err := h.Store.UpdateByID(id, payload.Record())
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !found {
		return errJSON(c, http.StatusNotFound, "Ticket not found")
	}
	return c.JSON(http.StatusOK, ticket)
}

// Delete handles DELETE /tickets/:id.
func (h *TicketHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return errJSON(c, http.StatusNotFound, "Ticket not found")
	}
	removed, err := h.Store.DeleteByID(id)
	if err != nil {
		return errJSON(c, http.StatusInternalServerError, "storage error")
	}
	if !removed {
		return errJSON(c, http.StatusNotFound, "Ticket not found")
	}
	return c.NoContent(http.StatusNoContent)
}
