package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/payment"
)

// invoiceDaysUntilDue is the payment window of the send-by-email invoices.
const invoiceDaysUntilDue int64 = 30

// HandleCreateInvoice creates an invoice item plus a send-by-email invoice
// against the fixed test customer. The price is selected by path segments:
// /create-invoice/basic/monthly reads the BASIC_MONTHLY configuration key.
// The provider's invoice payload is returned verbatim.
func (ct *Controller) HandleCreateInvoice(c *fiber.Ctx) error {
	key, priceID, ok := ct.cfg.Price(c.Params("prod"), c.Params("price"))
	if !ok {
		return ct.renderError(c, fmt.Errorf("no price configured for %s", key))
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	inv, err := ct.provider.CreateInvoice(ctx, payment.InvoiceRequest{
		CustomerID:   ct.cfg.TestCustomerID,
		PriceID:      priceID,
		DaysUntilDue: invoiceDaysUntilDue,
	})
	if err != nil {
		return ct.renderError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(inv.Raw)
}
