package cli

import (
	"context"

	"github.com/ghi-cli/ghi/internal/domain"
)

// Handler runs one command.
type Handler func(ctx context.Context, inv Invocation) error

// Dispatcher maps commands to handlers.
type Dispatcher struct {
	handlers map[Command]Handler
}

// NewDispatcher creates a Dispatcher for the given handler table.
func NewDispatcher(handlers map[Command]Handler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// Dispatch runs the handler for inv.Command.
// Unknown commands fail with a dispatch error naming the command as typed.
func (d *Dispatcher) Dispatch(ctx context.Context, inv Invocation) error {
	h, ok := d.handlers[inv.Command]
	if !ok || h == nil {
		return domain.DispatchError(inv.Name)
	}
	return h(ctx, inv)
}
