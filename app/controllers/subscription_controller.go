package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/billingsamples/fixedprice/internal/pkg/billingcontext"
	"github.com/billingsamples/fixedprice/internal/pkg/payment"
)

// HandleSubscriptionPage renders the signup form with the customer created
// earlier in the session, if any.
func (ct *Controller) HandleSubscriptionPage(c *fiber.Ctx) error {
	state := billingcontext.Get(c)
	return c.Render("subscription", fiber.Map{
		"customer": state.Customer,
		"price":    ct.cfg.BasicMonthlyPrice,
		"ft":       trialDescriptor(state.FreeTrial),
		"flash":    flash.Get(c),
	})
}

func (ct *Controller) HandleCreateCustomer(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	cust, err := ct.provider.CreateCustomer(ctx, c.FormValue("email"))
	if err != nil {
		return ct.renderError(c, err)
	}

	ct.store.SetCustomer(c, cust.ID)
	if freeTrial := c.FormValue("freeTrial"); freeTrial != "" {
		ct.store.SetFreeTrial(c, freeTrial)
	}

	return flash.WithSuccess(c, fiber.Map{
		"type":    "success",
		"message": "Customer created",
	}).Redirect("/subscription")
}

// HandleSubscribePage renders the payment confirmation step. The client
// secret is injected server-side; the cookie stays HTTPOnly.
func (ct *Controller) HandleSubscribePage(c *fiber.Ctx) error {
	state := billingcontext.Get(c)

	period := c.Query("free-trial")
	if period == "" {
		period = c.Query("freeTrial")
	}

	return c.Render("subscribe", fiber.Map{
		"subscription": state.Subscription,
		"clientSecret": state.ClientSecret,
		"pk":           ct.cfg.StripePublishableKey,
		"price":        ct.cfg.BasicMonthlyPrice,
		"ft":           trialDescriptor(period),
	})
}

func (ct *Controller) HandleCreateSubscription(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	sub, err := ct.provider.CreateSubscription(ctx, payment.SubscriptionRequest{
		CustomerID: c.FormValue("customerId"),
		PriceID:    c.FormValue("priceId"),
	})
	if err != nil {
		return ct.renderError(c, err)
	}

	ct.store.SetSubscription(c, sub.ID)
	ct.store.SetClientSecret(c, sub.ClientSecret)

	return c.Redirect("/subscribe")
}

// HandleCreateTrialSubscription creates a trialing subscription plus a
// setup intent. The cookie-stored client secret is the setup intent's, not
// the subscription's: during a trial there is nothing to pay yet, only a
// payment method to capture for later off-session use.
func (ct *Controller) HandleCreateTrialSubscription(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	freeTrial := c.FormValue("freeTrial")
	trialDays, err := parseTrialDays(freeTrial)
	if err != nil {
		return ct.renderError(c, err)
	}

	sub, err := ct.provider.CreateSubscription(ctx, payment.SubscriptionRequest{
		CustomerID: c.FormValue("customerId"),
		PriceID:    c.FormValue("priceId"),
		TrialDays:  trialDays,
	})
	if err != nil {
		return ct.renderError(c, err)
	}
	ct.store.SetSubscription(c, sub.ID)

	intent, err := ct.provider.CreateSetupIntent(ctx, billingcontext.Get(c).Customer)
	if err != nil {
		return ct.renderError(c, err)
	}
	ct.store.SetClientSecret(c, intent.ClientSecret)

	return c.Redirect("/subscribe?freeTrial=" + freeTrial)
}
