package billingcontext

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/session"
)

// Locals key shared between the middleware and the controllers.
const localsKey = "BILLING_CONTEXT"

// Get retrieves the billing session state from the fiber context.
// Returns an empty state if the middleware did not run.
func Get(c *fiber.Ctx) session.State {
	if state := c.Locals(localsKey); state != nil {
		return state.(session.State)
	}
	return session.State{}
}

// Set stores the billing session state on the fiber context.
func Set(c *fiber.Ctx, state session.State) {
	c.Locals(localsKey, state)
}

// HasCustomer checks whether a customer was created earlier in the session.
func HasCustomer(c *fiber.Ctx) bool {
	return Get(c).Customer != ""
}
