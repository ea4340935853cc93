package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/handler"
	"github.com/ivargas/eventmesh/internal/model"
	"github.com/ivargas/eventmesh/internal/router"
	"github.com/ivargas/eventmesh/internal/store"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	cfg := config.LoadService("users")

	e := router.New(cfg)
	router.RegisterUsers(e, &handler.UserHandler{
		Store: store.New[*model.User](cfg.DataFile),
	})

	log.Printf("users service listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
