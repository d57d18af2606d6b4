package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// HandleWebhook ingests provider events. Signature verification runs over
// the exact raw body before anything else; fiber never pre-parses request
// bodies, so c.Body() is the byte stream the signature was computed on.
func (ct *Controller) HandleWebhook(c *fiber.Ctx) error {
	event, err := ct.provider.ParseWebhookEvent(c.Body(), c.Get("Stripe-Signature"))
	if err != nil {
		log.Printf("webhook: signature verification failed: %v", err)
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err := ct.registry.Dispatch(c.UserContext(), event); err != nil {
		// Acknowledge anyway. A non-2xx makes the provider re-deliver the
		// event into the same failing handler; handlers are idempotent and
		// their failures are an operator concern, not the provider's.
		log.Printf("webhook: handler for %s failed: %v", event.Type, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
