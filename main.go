package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/billingsamples/fixedprice/internal/pkg/config"
	"github.com/billingsamples/fixedprice/internal/pkg/env"
	"github.com/billingsamples/fixedprice/internal/pkg/payment"
	"github.com/billingsamples/fixedprice/internal/pkg/router"
)

func main() {
	env.SetupEnvFile()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	app := NewApplication(cfg)

	// graceful shutdown on SIGINT/SIGTERM
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("shutdown signal received")
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)
	log.Printf("server listening on http://%s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}

func NewApplication(cfg *config.Config) *fiber.App {
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// static files
	app.Static("/", "./public/assets")

	provider := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret)
	router.InstallRouter(app, cfg, provider)

	return app
}
