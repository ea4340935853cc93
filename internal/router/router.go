// Package router wires middleware and routes onto an Echo instance for each
// service in the mesh. Every service carries the same ambient middleware
// chain; only the resource routes differ.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/correlation"
	"github.com/ivargas/eventmesh/internal/handler"
	"github.com/ivargas/eventmesh/internal/middleware"
)

// New builds an Echo instance with the correlation, logging and optional
// rate-limit middleware applied, plus the /healthz probe.
func New(cfg config.Service) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(correlation.Middleware())
	e.Use(middleware.RequestLogger())
	if cfg.RateLimit.Enabled {
		e.Use(middleware.RateLimit(cfg.RateLimit, config.NewRedisClient()))
	}
	e.GET("/healthz", handler.Health)
	return e
}

// RegisterUsers maps the users resource, including the organizer-flag lookup
// the events service depends on.
func RegisterUsers(e *echo.Echo, h *handler.UserHandler) {
	e.GET("/users", h.List)
	e.GET("/users/:id", h.Get)
	e.GET("/users/:id/is_organizer", h.IsOrganizer)
	e.POST("/users", h.Create)
	e.PUT("/users/:id", h.Update)
	e.DELETE("/users/:id", h.Delete)
}

// RegisterEvents maps the events resource.
func RegisterEvents(e *echo.Echo, h *handler.EventHandler) {
	e.GET("/events", h.List)
	e.GET("/events/:id", h.Get)
	e.POST("/events", h.Create)
	e.PUT("/events/:id", h.Update)
	e.DELETE("/events/:id", h.Delete)
}

// RegisterTickets maps the tickets resource.
func RegisterTickets(e *echo.Echo, h *handler.TicketHandler) {
	e.GET("/tickets", h.List)
	e.GET("/tickets/:id", h.Get)
	e.POST("/tickets", h.Create)
	e.PUT("/tickets/:id", h.Update)
	e.DELETE("/tickets/:id", h.Delete)
}

// RegisterBills maps the bills resource.
func RegisterBills(e *echo.Echo, h *handler.BillHandler) {
	e.GET("/bills", h.List)
	e.GET("/bills/:id", h.Get)
	e.POST("/bills", h.Create)
	e.PUT("/bills/:id", h.Update)
	e.DELETE("/bills/:id", h.Delete)
}

// RegisterNotifications maps the notifications resource.
func RegisterNotifications(e *echo.Echo, h *handler.NotificationHandler) {
	e.GET("/notifications", h.List)
	e.GET("/notifications/:id", h.Get)
	e.POST("/notifications", h.Create)
	e.PUT("/notifications/:id", h.Update)
	e.DELETE("/notifications/:id", h.Delete)
}

// RegisterNotifier maps the HTTP-triggered relay producer.
func RegisterNotifier(e *echo.Echo, h *handler.NotifyHandler) {
	e.POST("/notify", h.Send)
}
