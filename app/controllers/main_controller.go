package controllers

import (
	"github.com/gofiber/fiber/v2"
)

func (ct *Controller) HandleHome(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"home": "Welcome",
	})
}

// HandleRecurring renders the manual recurring-charge demo. An optional
// free-trial query parameter pre-selects a trial length for the signup form.
func (ct *Controller) HandleRecurring(c *fiber.Ctx) error {
	return c.Render("recurring", fiber.Map{
		"price": ct.cfg.BasicMonthlyPrice,
		"pk":    ct.cfg.StripePublishableKey,
		"ft":    trialDescriptor(c.Query("free-trial")),
	})
}

func (ct *Controller) HandleComplete(c *fiber.Ctx) error {
	return c.Render("complete", fiber.Map{})
}

func (ct *Controller) HandleCanceled(c *fiber.Ctx) error {
	return c.Render("canceled", fiber.Map{})
}

func (ct *Controller) HandleCheckoutPage(c *fiber.Ctx) error {
	return c.Render("checkout", fiber.Map{
		"price": ct.cfg.BasicMonthlyPrice,
		"pk":    ct.cfg.StripePublishableKey,
	})
}
