// Package queue implements the notification relay: a producer and a consumer
// sharing one named queue on the broker. The relay is fire-and-forget and
// sits outside the validation mesh; delivery is at-most-once by design.
package queue

// Name is the single queue the relay publishes to and consumes from.
const Name = "user.notifications"

// Message is the relay payload: a user reference plus free-text content.
type Message struct {
	User         string `json:"user"`
	Notification string `json:"notification"`
}
