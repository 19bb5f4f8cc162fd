package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type ServerConfig struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"release"`
}

// Addr dipakai langsung oleh http.Server
func (s ServerConfig) Addr() string {
	return ":" + s.Port
}

// Remote store API (produk, user, grade, kurs, dan order semuanya ada di sana)
type StoreAPIConfig struct {
	BaseURL   string        `envconfig:"URL" default:"http://localhost:3000"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"10s"`
	RateLimit float64       `envconfig:"RPS" default:"50"`
	RateBurst int           `envconfig:"BURST" default:"20"`
}

type SessionConfig struct {
	Secret      string        `envconfig:"SECRET" default:"storefront-insecure-session-secret"`
	CookieName  string        `envconfig:"COOKIE" default:"storefront_session"`
	IdleTimeout time.Duration `envconfig:"IDLE_TIMEOUT" default:"30m"`
	ReaperSpec  string        `envconfig:"REAPER_SPEC" default:"0 */5 * * * *"`
	// Batas waktu fetch kurs di background untuk session baru
	ExchangeRateTimeout time.Duration `envconfig:"EXCHANGE_RATE_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	FreeShippingThreshold float64       `envconfig:"FREE_SHIPPING_THRESHOLD" default:"30"`
	RedirectDelay         time.Duration `envconfig:"REDIRECT_DELAY" default:"2s"`
}

type StorefrontConfig struct {
	LogLevel string         `envconfig:"LOG_LEVEL" default:"info"`
	Server   ServerConfig   `envconfig:"SERVER"`
	StoreAPI StoreAPIConfig `envconfig:"STORE_API"`
	Session  SessionConfig  `envconfig:"SESSION"`
	Checkout CheckoutConfig `envconfig:"CHECKOUT"`
}

const envPrefix = "STOREFRONT"

// LoadStorefrontConfig membaca env STOREFRONT_* (misal STOREFRONT_STORE_API_URL),
// default dipakai kalau tidak diset.
func LoadStorefrontConfig() (StorefrontConfig, error) {
	var cfg StorefrontConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return StorefrontConfig{}, err
	}
	return cfg, nil
}
