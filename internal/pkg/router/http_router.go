package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/app/controllers"
	"github.com/billingsamples/fixedprice/internal/pkg/config"
	"github.com/billingsamples/fixedprice/internal/pkg/middleware"
	"github.com/billingsamples/fixedprice/internal/pkg/payment"
	"github.com/billingsamples/fixedprice/internal/pkg/session"
)

type HttpRouter struct {
	cfg      *config.Config
	provider payment.Provider
}

func NewHttpRouter(cfg *config.Config, provider payment.Provider) *HttpRouter {
	return &HttpRouter{cfg: cfg, provider: provider}
}

func (h *HttpRouter) InstallRouter(app *fiber.App) {
	store := session.NewStore(session.Options{
		TTL:      h.cfg.SessionTTL,
		HTTPOnly: h.cfg.CookieHTTPOnly,
		Secure:   h.cfg.CookieSecure,
	})

	registry := payment.NewRegistry()
	payment.RegisterDefaultHandlers(registry)

	// Load the cookie session into the request context before any handler.
	app.Use(middleware.BillingContext(store))

	ct := controllers.New(h.cfg, h.provider, registry, store)

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

	// Signature verification needs the exact raw bytes; the handler is the
	// only reader of the body on this route.
	app.Post("/webhook", ct.HandleWebhook)
}
