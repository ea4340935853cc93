package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/ivargas/eventmesh/internal/config"
	"github.com/ivargas/eventmesh/internal/queue"
)

// The autonotifier publishes a numbered notification on a fixed interval,
// forever. Each send opens and closes its own connection; a failed send is
// logged and skipped, never retried.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))
	brokerURL := config.BrokerURL()
	interval := 5 * time.Second
	if v := os.Getenv("SEND_INTERVAL_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			interval = time.Duration(ms) * time.Millisecond
		}
	}

	for counter := 1; ; counter++ {
		msg := queue.Message{
			User:         fmt.Sprintf("user_%d", counter),
			Notification: fmt.Sprintf("automatic notification #%d", counter),
		}
		if err := queue.Publish(context.Background(), brokerURL, msg); err != nil {
			slog.Warn("send failed", "err", err, "counter", counter)
		} else {
			slog.Info("message sent", "user", msg.User)
		}
		time.Sleep(interval)
	}
}
