package controllers

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/config"
	"github.com/billingsamples/fixedprice/internal/pkg/payment"
	"github.com/billingsamples/fixedprice/internal/pkg/session"
)

// providerCallTimeout bounds every payment API call.
const providerCallTimeout = 20 * time.Second

// Controller holds the collaborators every route handler needs. The
// router constructs it once at install time.
type Controller struct {
	cfg      *config.Config
	provider payment.Provider
	registry *payment.Registry
	store    *session.Store
}

func New(cfg *config.Config, provider payment.Provider, registry *payment.Registry, store *session.Store) *Controller {
	return &Controller{
		cfg:      cfg,
		provider: provider,
		registry: registry,
		store:    store,
	}
}

type apiError struct {
	E apiErrorMessage `json:"e"`
}

type apiErrorMessage struct {
	Message string `json:"message"`
}

// renderError is the uniform failure contract: every provider failure on a
// mutating route answers 400 with {"e":{"message":...}}.
func (ct *Controller) renderError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(apiError{
		E: apiErrorMessage{Message: payment.ErrorMessage(err)},
	})
}

func requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), providerCallTimeout)
}

// parseTrialDays distinguishes "no trial requested" (empty value, nil
// result) from a zero-day trial ("0", pointer to 0).
func parseTrialDays(raw string) (*int64, error) {
	if raw == "" {
		return nil, nil
	}
	days, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid trial period %q", raw)
	}
	return &days, nil
}

// trialDescriptor is either nil or an object carrying the trial length,
// matching what the templates test with {{if .ft}}.
func trialDescriptor(period string) interface{} {
	if period == "" {
		return nil
	}
	return fiber.Map{"Period": period}
}
