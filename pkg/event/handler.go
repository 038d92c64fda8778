package event

import (
	"context"
	"fmt"
)

type Handler func(ctx context.Context, event Event) error

func NewTypedHandler[T Event](handler func(ctx context.Context, event T) error) Handler {
	return func(ctx context.Context, event Event) error {
		concreteEvent, ok := event.(T)
		if !ok {
			return fmt.Errorf("invalid event with id %v and type %v passed", event.ID(), event.Type())
		}
		return handler(ctx, concreteEvent)
	}
}
