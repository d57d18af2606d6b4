package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/payment"
)

// checkoutTrialDays is the fixed trial length of the hosted checkout demo.
const checkoutTrialDays int64 = 7

// HandleCreateCheckoutSession creates a hosted checkout flow and redirects
// the browser to the externally rendered payment page.
func (ct *Controller) HandleCreateCheckoutSession(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	trialDays := checkoutTrialDays
	link, err := ct.provider.CreateCheckoutSession(ctx, payment.CheckoutRequest{
		PriceID:   ct.cfg.BasicMonthlyPrice,
		Quantity:  1,
		TrialDays: &trialDays,
		// {CHECKOUT_SESSION_ID} is a literal; the provider substitutes the
		// session ID when redirecting back.
		SuccessURL: ct.cfg.BaseURL + "/complete/?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  ct.cfg.BaseURL + "/canceled",
	})
	if err != nil {
		return ct.renderError(c, err)
	}

	return c.Redirect(link.URL, fiber.StatusSeeOther)
}
