package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/invoice"
	"github.com/stripe/stripe-go/v76/invoiceitem"
	"github.com/stripe/stripe-go/v76/setupintent"
	"github.com/stripe/stripe-go/v76/subscription"
	"github.com/stripe/stripe-go/v76/webhook"
)

// StripeProvider implements Provider against the Stripe API.
type StripeProvider struct {
	webhookSecret string
}

func NewStripeProvider(secretKey, webhookSecret string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{webhookSecret: webhookSecret}
}

func (s *StripeProvider) CreateCustomer(ctx context.Context, email string) (*Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx

	cust, err := customer.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe customer: %w", err)
	}

	return &Customer{ID: cust.ID, Email: cust.Email}, nil
}

func (s *StripeProvider) CreateSubscription(ctx context.Context, req SubscriptionRequest) (*Subscription, error) {
	params := &stripe.SubscriptionParams{
		Customer: stripe.String(req.CustomerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(req.PriceID)},
		},
		// Incomplete-payment behavior defers the charge to a client-side
		// confirmation step against the returned client secret.
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	params.Context = ctx
	params.AddExpand("latest_invoice.payment_intent")
	if req.TrialDays != nil {
		params.TrialPeriodDays = stripe.Int64(*req.TrialDays)
	}

	sub, err := subscription.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe subscription: %w", err)
	}

	result := &Subscription{ID: sub.ID, Status: string(sub.Status)}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		result.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return result, nil
}

func (s *StripeProvider) CreateSetupIntent(ctx context.Context, customerID string) (*SetupIntent, error) {
	params := &stripe.SetupIntentParams{
		Customer:           stripe.String(customerID),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := setupintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe setup intent: %w", err)
	}

	return &SetupIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func (s *StripeProvider) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutLink, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(req.PriceID),
				Quantity: stripe.Int64(req.Quantity),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
	params.Context = ctx
	if req.TrialDays != nil {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(*req.TrialDays),
		}
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe checkout session: %w", err)
	}

	return &CheckoutLink{URL: sess.URL, SessionID: sess.ID}, nil
}

func (s *StripeProvider) CreateInvoice(ctx context.Context, req InvoiceRequest) (*Invoice, error) {
	itemParams := &stripe.InvoiceItemParams{
		Customer: stripe.String(req.CustomerID),
		Price:    stripe.String(req.PriceID),
	}
	itemParams.Context = ctx

	if _, err := invoiceitem.New(itemParams); err != nil {
		return nil, fmt.Errorf("failed to create stripe invoice item: %w", err)
	}

	invParams := &stripe.InvoiceParams{
		Customer:         stripe.String(req.CustomerID),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:     stripe.Int64(req.DaysUntilDue),
	}
	invParams.Context = ctx

	inv, err := invoice.New(invParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe invoice: %w", err)
	}

	raw := rawPayload(inv)
	return &Invoice{ID: inv.ID, Raw: raw}, nil
}

func (s *StripeProvider) ParseWebhookEvent(payload []byte, signature string) (WebhookEvent, error) {
	if s.webhookSecret == "" {
		return WebhookEvent{}, errors.New("stripe webhook secret is not configured")
	}

	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return WebhookEvent{}, fmt.Errorf("failed to verify webhook signature: %w", err)
	}

	return WebhookEvent{
		ID:   event.ID,
		Type: string(event.Type),
		Raw:  json.RawMessage(event.Data.Raw),
	}, nil
}

// rawPayload returns the provider's exact response body when available so
// the invoice route can pass it through verbatim.
func rawPayload(inv *stripe.Invoice) json.RawMessage {
	if inv.LastResponse != nil && len(inv.LastResponse.RawJSON) > 0 {
		return json.RawMessage(inv.LastResponse.RawJSON)
	}
	marshaled, err := json.Marshal(inv)
	if err != nil {
		return nil
	}
	return marshaled
}
