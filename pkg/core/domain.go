package core

import (
	"fmt"
	"time"
)

// EventType represents the type of change observed on the store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change observed on the persisted store file.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s at %s", e.Type, e.Path, time.Unix(e.Timestamp, 0).Format(time.RFC3339))
}
