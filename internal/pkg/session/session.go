package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Cookie names shared with the views and the front-end scripts.
const (
	CookieCustomer     = "customer"
	CookieSubscription = "subscription"
	CookieClientSecret = "clientSecret"
	CookieFreeTrial    = "freeTrial"
)

// State is the simulated login session. Every field is an opaque value
// received from the payment provider and round-tripped verbatim; a zero
// value means "no prior state", never an error.
type State struct {
	Customer     string
	Subscription string
	ClientSecret string
	FreeTrial    string
}

// Options makes the cookie policy explicit instead of hardcoding flags at
// each write site.
type Options struct {
	TTL      time.Duration
	HTTPOnly bool
	Secure   bool
}

type Store struct {
	opts Options
}

func NewStore(opts Options) *Store {
	if opts.TTL <= 0 {
		opts.TTL = 15 * time.Minute
	}
	return &Store{opts: opts}
}

// State reads the session cookies. Absent cookies yield zero fields.
func (s *Store) State(c *fiber.Ctx) State {
	return State{
		Customer:     c.Cookies(CookieCustomer),
		Subscription: c.Cookies(CookieSubscription),
		ClientSecret: c.Cookies(CookieClientSecret),
		FreeTrial:    c.Cookies(CookieFreeTrial),
	}
}

func (s *Store) SetCustomer(c *fiber.Ctx, id string) {
	s.set(c, CookieCustomer, id)
}

func (s *Store) SetSubscription(c *fiber.Ctx, id string) {
	s.set(c, CookieSubscription, id)
}

func (s *Store) SetClientSecret(c *fiber.Ctx, secret string) {
	s.set(c, CookieClientSecret, secret)
}

func (s *Store) SetFreeTrial(c *fiber.Ctx, days string) {
	s.set(c, CookieFreeTrial, days)
}

func (s *Store) set(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(s.opts.TTL),
		HTTPOnly: s.opts.HTTPOnly,
		Secure:   s.opts.Secure,
	})
}
