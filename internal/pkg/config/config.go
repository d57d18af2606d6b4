package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/billingsamples/fixedprice/internal/pkg/env"
)

// Config is built once at startup and passed into the router and the
// controllers. Handlers never read the process environment directly.
type Config struct {
	StripeSecretKey      string `validate:"required"`
	StripePublishableKey string `validate:"required"`
	StripeWebhookSecret  string

	// BASIC_MONTHLY is the fixed price used by the recurring and hosted
	// checkout demos. Ad hoc invoice prices are looked up via Price.
	BasicMonthlyPrice string
	TestCustomerID    string

	AppHost string
	AppPort string
	BaseURL string

	// Cookie policy for the simulated login session.
	SessionTTL     time.Duration
	CookieHTTPOnly bool
	CookieSecure   bool
}

// envNames maps Config fields to the environment variables they come from,
// so a validation failure can name every missing variable at once.
var envNames = map[string]string{
	"StripeSecretKey":      "STRIPE_SECRET_KEY",
	"StripePublishableKey": "STRIPE_PUBLISHABLE_KEY",
}

var validate = validator.New()

// Load builds and validates the configuration. It returns a single error
// enumerating every missing required environment variable rather than
// failing on the first one.
func Load() (*Config, error) {
	cfg := &Config{
		StripeSecretKey:      env.GetEnv("STRIPE_SECRET_KEY", ""),
		StripePublishableKey: env.GetEnv("STRIPE_PUBLISHABLE_KEY", ""),
		StripeWebhookSecret:  env.GetEnv("STRIPE_WEBHOOK_SECRET", ""),
		BasicMonthlyPrice:    env.GetEnv("BASIC_MONTHLY", ""),
		TestCustomerID:       env.GetEnv("TEST_CUST", ""),
		AppHost:              env.GetEnv("APP_HOST", "localhost"),
		AppPort:              env.GetEnv("APP_PORT", "3000"),
		SessionTTL:           sessionTTL(),
		CookieHTTPOnly:       env.GetEnv("COOKIE_HTTP_ONLY", "true") == "true",
		CookieSecure:         env.GetEnv("COOKIE_SECURE", "false") == "true",
	}
	cfg.BaseURL = env.GetEnv("BASE_URL", fmt.Sprintf("http://localhost:%s", cfg.AppPort))

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				name := envNames[fe.StructField()]
				if name == "" {
					name = fe.StructField()
				}
				missing = append(missing, name)
			}
			return nil, fmt.Errorf(
				"missing required environment variables: %s (add them to your .env file)",
				strings.Join(missing, ", "),
			)
		}
		return nil, err
	}

	return cfg, nil
}

// Price resolves an ad hoc invoice price from path segments, e.g.
// ("basic", "monthly") reads the BASIC_MONTHLY environment variable.
// The key is returned either way so callers can report what was missing.
func (c *Config) Price(product, tier string) (key, priceID string, ok bool) {
	key = strings.ToUpper(product) + "_" + strings.ToUpper(tier)
	priceID = env.GetEnv(key, "")
	return key, priceID, priceID != ""
}

func sessionTTL() time.Duration {
	// 900 seconds matches the front end cookie lifetime.
	seconds := 900
	if raw := env.GetEnv("SESSION_TTL_SECONDS", ""); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			seconds = parsed
		}
	}
	return time.Duration(seconds) * time.Second
}
