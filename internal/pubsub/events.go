// Package pubsub provides a generic publish/subscribe event system used for
// log fan-out and registry reload notifications.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// LoggedEvent carries a formatted log line.
	LoggedEvent EventType = "logged"
	// ReloadedEvent is published after a registry was recompiled and swapped in.
	ReloadedEvent EventType = "reloaded"
	// ReloadFailedEvent is published when a reload was rejected and the previous
	// registry stays active.
	ReloadFailedEvent EventType = "reload_failed"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T) int
}
