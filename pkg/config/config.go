package config

import (
	"time"
)

// Jwt configures the session credential: the shared signing secret for
// protected routes and the cookie the browser keeps it in.
type Jwt struct {
	Secret     string        `envconfig:"SECRET" required:"true"`
	Expiry     time.Duration `envconfig:"EXPIRY" default:"1h"`
	CookieName string        `envconfig:"COOKIE_NAME" default:"token"`
}

type Auth struct {
	Jwt *Jwt `envconfig:"JWT"`
}

// Backend points at the remote storefront API that issues tokens and
// creates checkout sessions. The HTTP timeout is deliberate policy: a hung
// call resolves as a transport failure instead of hanging the flow.
type Backend struct {
	BaseURL     string        `envconfig:"BASE_URL" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
}

//revive:disable
type Stripe struct {
	ApiKey         string `envconfig:"API_KEY"`
	PublishableKey string `envconfig:"PUBLISHABLE_KEY"`
	SuccessPath    string `envconfig:"SUCCESS_PATH" default:"http://localhost:3000/payment/success"`
	CancelPath     string `envconfig:"CANCEL_PATH" default:"http://localhost:3000/payment/cancel"`
}

//revive:enable

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[storefront]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	Auth      *Auth      `envconfig:"AUTH"`
	Backend   *Backend   `envconfig:"BACKEND"`
	Stripe    *Stripe    `envconfig:"STRIPE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
}
