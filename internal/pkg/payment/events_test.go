package payment

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryDispatchKnownType(t *testing.T) {
	registry := NewRegistry()

	var seen *WebhookEvent
	registry.Register(EventInvoiceCreated, func(ctx context.Context, event WebhookEvent) error {
		seen = &event
		return nil
	})

	event := WebhookEvent{
		ID:   "evt_123",
		Type: EventInvoiceCreated,
		Raw:  json.RawMessage(`{"id":"in_123"}`),
	}
	require.NoError(t, registry.Dispatch(context.Background(), event))
	require.NotNil(t, seen)
	assert.Equal(t, "evt_123", seen.ID)
	assert.JSONEq(t, `{"id":"in_123"}`, string(seen.Raw))
}

func TestRegistryDispatchUnknownTypeIsNoop(t *testing.T) {
	registry := NewRegistry()
	registry.Register(EventInvoiceCreated, func(ctx context.Context, event WebhookEvent) error {
		t.Fatal("handler must not run for other event types")
		return nil
	})

	err := registry.Dispatch(context.Background(), WebhookEvent{Type: "customer.updated"})
	assert.NoError(t, err)
}

func TestRegistryDispatchPropagatesHandlerError(t *testing.T) {
	registry := NewRegistry()
	wantErr := errors.New("provisioning failed")
	registry.Register(EventInvoicePaymentSucceeded, func(ctx context.Context, event WebhookEvent) error {
		return wantErr
	})

	err := registry.Dispatch(context.Background(), WebhookEvent{Type: EventInvoicePaymentSucceeded})
	assert.ErrorIs(t, err, wantErr)
}

func TestRegisterDefaultHandlers(t *testing.T) {
	registry := NewRegistry()
	RegisterDefaultHandlers(registry)

	assert.Contains(t, registry.handlers, EventInvoiceCreated)
	assert.Contains(t, registry.handlers, EventInvoicePaymentSucceeded)
	assert.NoError(t, registry.Dispatch(context.Background(), WebhookEvent{Type: EventInvoiceCreated}))
	assert.NoError(t, registry.Dispatch(context.Background(), WebhookEvent{Type: EventInvoicePaymentSucceeded}))
}

func TestParseWebhookEventWithoutSecret(t *testing.T) {
	provider := NewStripeProvider("sk_test_123", "")

	_, err := provider.ParseWebhookEvent([]byte(`{}`), "t=1,v1=abc")
	assert.Error(t, err)
}
