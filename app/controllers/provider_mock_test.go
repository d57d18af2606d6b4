package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/config"
	"github.com/billingsamples/fixedprice/internal/pkg/middleware"
	"github.com/billingsamples/fixedprice/internal/pkg/payment"
	"github.com/billingsamples/fixedprice/internal/pkg/session"
)

// mockProvider implements payment.Provider with overridable call hooks.
// Calls without a hook fail, so tests catch unexpected provider traffic.
type mockProvider struct {
	createCustomerFn        func(ctx context.Context, email string) (*payment.Customer, error)
	createSubscriptionFn    func(ctx context.Context, req payment.SubscriptionRequest) (*payment.Subscription, error)
	createSetupIntentFn     func(ctx context.Context, customerID string) (*payment.SetupIntent, error)
	createCheckoutSessionFn func(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutLink, error)
	createInvoiceFn         func(ctx context.Context, req payment.InvoiceRequest) (*payment.Invoice, error)
	parseWebhookEventFn     func(payload []byte, signature string) (payment.WebhookEvent, error)
}

var errUnexpectedCall = errors.New("unexpected provider call")

func (m *mockProvider) CreateCustomer(ctx context.Context, email string) (*payment.Customer, error) {
	if m.createCustomerFn == nil {
		return nil, errUnexpectedCall
	}
	return m.createCustomerFn(ctx, email)
}

func (m *mockProvider) CreateSubscription(ctx context.Context, req payment.SubscriptionRequest) (*payment.Subscription, error) {
	if m.createSubscriptionFn == nil {
		return nil, errUnexpectedCall
	}
	return m.createSubscriptionFn(ctx, req)
}

func (m *mockProvider) CreateSetupIntent(ctx context.Context, customerID string) (*payment.SetupIntent, error) {
	if m.createSetupIntentFn == nil {
		return nil, errUnexpectedCall
	}
	return m.createSetupIntentFn(ctx, customerID)
}

func (m *mockProvider) CreateCheckoutSession(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutLink, error) {
	if m.createCheckoutSessionFn == nil {
		return nil, errUnexpectedCall
	}
	return m.createCheckoutSessionFn(ctx, req)
}

func (m *mockProvider) CreateInvoice(ctx context.Context, req payment.InvoiceRequest) (*payment.Invoice, error) {
	if m.createInvoiceFn == nil {
		return nil, errUnexpectedCall
	}
	return m.createInvoiceFn(ctx, req)
}

func (m *mockProvider) ParseWebhookEvent(payload []byte, signature string) (payment.WebhookEvent, error) {
	if m.parseWebhookEventFn == nil {
		return payment.WebhookEvent{}, errUnexpectedCall
	}
	return m.parseWebhookEventFn(payload, signature)
}

func testConfig() *config.Config {
	return &config.Config{
		StripeSecretKey:      "sk_test_123",
		StripePublishableKey: "pk_test_123",
		StripeWebhookSecret:  "whsec_test_123",
		BasicMonthlyPrice:    "price_basic_monthly",
		TestCustomerID:       "cus_test_fixture",
		AppHost:              "localhost",
		AppPort:              "3000",
		BaseURL:              "http://localhost:3000",
		SessionTTL:           900 * time.Second,
	}
}

// newTestApp wires the routes the way the router does, against the given
// provider and registry.
func newTestApp(provider payment.Provider, registry *payment.Registry) *fiber.App {
	cfg := testConfig()
	store := session.NewStore(session.Options{TTL: cfg.SessionTTL})
	if registry == nil {
		registry = payment.NewRegistry()
		payment.RegisterDefaultHandlers(registry)
	}

	app := fiber.New(fiber.Config{
		Views: html.New("../../views", ".html"),
	})
	app.Use(middleware.BillingContext(store))

	ct := New(cfg, provider, registry, store)
	app.Get("/", ct.HandleHome)
	app.Get("/recurring", ct.HandleRecurring)
	app.Get("/subscription", ct.HandleSubscriptionPage)
	app.Post("/create-customer", ct.HandleCreateCustomer)
	app.Get("/subscribe", ct.HandleSubscribePage)
	app.Post("/create-subscription", ct.HandleCreateSubscription)
	app.Post("/create-trial-subscription", ct.HandleCreateTrialSubscription)
	app.Get("/complete", ct.HandleComplete)
	app.Get("/canceled", ct.HandleCanceled)
	app.Get("/checkout", ct.HandleCheckoutPage)
	app.Post("/create-checkout-session", ct.HandleCreateCheckoutSession)
	app.Get("/create-invoice/:prod/:price", ct.HandleCreateInvoice)
	app.Post("/webhook", ct.HandleWebhook)

	return app
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return req
}

func responseCookie(resp *http.Response, name string) (string, bool) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie.Value, true
		}
	}
	return "", false
}
