package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/handler"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/peer"
	"github.com/ivargas/eventmesh/internal/router"
	"github.com/ivargas/eventmesh/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	cfg := config.LoadService("notifications")

	e := router.New(cfg)
	router.RegisterNotifications(e, &handler.NotificationHandler{
		Store:    store.New[*model.Notification](cfg.DataFile),
		Peers:    peer.NewClient(cfg.PeerTimeout),
		UsersURL: cfg.UsersURL,
	})

	log.Printf("notifications service listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
