package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/queue"
)

// NotifyHandler is the HTTP-triggered relay producer. It publishes the
// supplied payload synchronously within the request cycle and answers with
// the enqueued payload as acknowledgment. The acknowledgment means the
// broker accepted the publish, nothing more.
type NotifyHandler struct {
	Publish func(ctx context.Context, msg queue.Message) error
}

type notifyPayload struct {
	User         *string `json:"user"`
	Notification *string `json:"notification"`
}

func (p *notifyPayload) validate() model.ValidationErrors {
	errs := model.ValidationErrors{}
	if p.User == nil {
		errs["user"] = append(errs["user"], model.MissingField)
	}
	if p.Notification == nil {
		errs["notification"] = append(errs["notification"], model.MissingField)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Send handles POST /notify.
func (h *NotifyHandler) Send(c echo.Context) error {
	var payload notifyPayload
	if errs := bindJSON(c, &payload); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	if errs := payload.validate(); errs != nil {
		return c.JSON(http.StatusBadRequest, errs)
	}
	ctx := c.Request().Context()
	msg := queue.Message{User: *payload.User, Notification: *payload.Notification}
	if err := h.Publish(ctx, msg); err != nil {
		correlation.Logger(ctx).Error("publish failed", "err", err)
		return errJSON(c, http.StatusInternalServerError, "Unable to send notification")
	}
	correlation.Logger(ctx).Info("notification published", "user", msg.User)
	return c.JSON(http.StatusOK, map[string]any{
		"message": "notification sent",
		"data":    msg,
	})
}
