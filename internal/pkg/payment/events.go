package payment

import (
	"context"
	"log"
)

// Stripe event types this application cares about. Anything else is
// acknowledged without dispatch.
const (
	EventInvoiceCreated          = "invoice.created"
	EventInvoicePaymentSucceeded = "invoice.payment_succeeded"
)

// EventHandler processes one verified webhook event. Handlers must be
// idempotent: the provider re-delivers events on any non-2xx response, and
// this application keeps no delivery record.
type EventHandler func(ctx context.Context, event WebhookEvent) error

// Registry maps event types to handlers so each handler can be registered
// and tested independently of the HTTP endpoint.
type Registry struct {
	handlers map[string]EventHandler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]EventHandler)}
}

func (r *Registry) Register(eventType string, handler EventHandler) {
	r.handlers[eventType] = handler
}

// Dispatch runs the handler registered for the event's type. Unknown types
// are a no-op, not an error: the endpoint acknowledges them regardless.
func (r *Registry) Dispatch(ctx context.Context, event WebhookEvent) error {
	handler, ok := r.handlers[event.Type]
	if !ok {
		return nil
	}
	return handler(ctx, event)
}

// RegisterDefaultHandlers wires the built-in handlers: invoice creation is
// logged, payment success is a named hook for fulfillment logic.
func RegisterDefaultHandlers(r *Registry) {
	r.Register(EventInvoiceCreated, func(ctx context.Context, event WebhookEvent) error {
		log.Printf("webhook: invoice created (event %s)", event.ID)
		return nil
	})
	r.Register(EventInvoicePaymentSucceeded, func(ctx context.Context, event WebhookEvent) error {
		// Hook point for fulfillment/provisioning.
		return nil
	})
}
