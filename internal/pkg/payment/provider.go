package payment

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/stripe/stripe-go/v76"
)

// Customer is a provider-issued customer reference. The ID is opaque and
// round-tripped verbatim into the session cookie.
type Customer struct {
	ID    string
	Email string
}

// SubscriptionRequest pairs a customer with a price. TrialDays is nil when
// no trial was requested; a pointer to 0 is a real zero-day trial and must
// reach the provider as such.
type SubscriptionRequest struct {
	CustomerID string
	PriceID    string
	TrialDays  *int64
}

// Subscription carries the references the confirmation page needs. The
// client secret comes from the latest invoice's payment intent and
// authorizes exactly one client-side confirmation.
type Subscription struct {
	ID           string
	Status       string
	ClientSecret string
}

// SetupIntent captures a payment method off-session. Its client secret is
// distinct from any payment intent secret on the subscription itself.
type SetupIntent struct {
	ID           string
	ClientSecret string
}

// CheckoutRequest describes a hosted checkout flow.
type CheckoutRequest struct {
	PriceID    string
	Quantity   int64
	TrialDays  *int64
	SuccessURL string
	CancelURL  string
}

// CheckoutLink is the externally hosted payment page to redirect to.
type CheckoutLink struct {
	URL       string
	SessionID string
}

// InvoiceRequest creates an invoice item plus a send-by-email invoice.
type InvoiceRequest struct {
	CustomerID   string
	PriceID      string
	DaysUntilDue int64
}

// Invoice keeps the provider's response payload so handlers can return it
// verbatim.
type Invoice struct {
	ID  string
	Raw json.RawMessage
}

// WebhookEvent is a verified event envelope. Raw is the event's
// data.object payload; its shape depends on Type.
type WebhookEvent struct {
	ID   string
	Type string
	Raw  json.RawMessage
}

// Provider is the payment service collaborator. Implementations call the
// provider's HTTP API; no billing state transition is computed locally.
type Provider interface {
	CreateCustomer(ctx context.Context, email string) (*Customer, error)
	CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Subscription, error)
	CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error)
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error)
	CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error)

	// ParseWebhookEvent verifies the signature over the exact raw body
	// before decoding. A verification failure means the event must not be
	// dispatched.
	ParseWebhookEvent(payload []byte, signature string) (WebhookEvent, error)
}

// ErrorMessage extracts the human-readable message from a provider error
// for the {"e":{"message":...}} response envelope.
func ErrorMessage(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}
	return err.Error()
}
