package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/queue"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	err := queue.Consume(config.BrokerURL(), func(msg queue.Message) {
		slog.Info("notification received", "user", msg.User, "notification", msg.Notification)
	})
	log.Fatal(err)
}
