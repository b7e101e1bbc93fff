// Package lifecycle bridges store change events into the lifecycle event model.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/noteapp/pkg/core"
)

// Source emits store events as lifecycle events.
type Source struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource wraps a channel obtained from core.Service.Watch.
func NewSource(events <-chan core.Event) *Source {
	return &Source{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

// Events returns the bridged channel. It is closed when the input closes or
// the context passed to Start is cancelled.
func (s *Source) Events() <-chan lifecycle.Event {
	return s.out
}

// Start runs the bridge in a tracked goroutine.
func (s *Source) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event via String().
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}

var _ lifecycle.Source = (*Source)(nil)
