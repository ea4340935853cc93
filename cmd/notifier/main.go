package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/handler"
	"github.com/ivargas/eventmesh/internal/queue"
	"github.com/ivargas/eventmesh/internal/router"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	cfg := config.LoadService("notifier")
	brokerURL := config.BrokerURL()

	e := router.New(cfg)
	router.RegisterNotifier(e, &handler.NotifyHandler{
		Publish: func(ctx context.Context, msg queue.Message) error {
			return queue.Publish(ctx, brokerURL, msg)
		},
	})

	log.Printf("notifier service listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
