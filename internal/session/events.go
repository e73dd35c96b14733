package session

import "github.com/zjrosen/pagesmith/internal/pubsub"

// Change describes one committed change to the session.
type Change struct {
	Kind    pubsub.EventType
	Label   string
	BlockID string
}

// ChangeEvent is the pubsub envelope delivered to subscribers.
type ChangeEvent = pubsub.Event[Change]
