package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/config"
	"github.com/billingsamples/fixedprice/internal/pkg/payment"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, cfg *config.Config, provider payment.Provider) {
	setup(app, NewHttpRouter(cfg, provider))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
