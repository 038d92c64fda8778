package event

import (
	"context"
	"fmt"
)

type dispatcher struct {
	handlers map[string][]Handler
}

func NewDispatcher(handlers map[string][]Handler) Dispatcher {
	return &dispatcher{handlers: handlers}
}

func (d *dispatcher) Dispatch(ctx context.Context, events ...Event) error {
	for _, evt := range events {
		for _, handler := range d.handlers[evt.Type()] {
			err := handler(ctx, evt)
			if err != nil {
				return fmt.Errorf("handle event %s: %w", evt.Type(), err)
			}
		}
	}
	return nil
}
