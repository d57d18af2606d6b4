package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/billingcontext"
	"github.com/billingsamples/fixedprice/internal/pkg/session"
)

// BillingContext loads the cookie-backed session state once per request so
// controllers and views read one typed value instead of raw cookies.
func BillingContext(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		billingcontext.Set(c, store.State(c))
		return c.Next()
	}
}
