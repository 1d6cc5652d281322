package httpclient

import (
	"time"

	"github.com/kbukum/restfulcore/security"
	"github.com/kbukum/restfulcore/validation"
	"github.com/kbukum/restfulcore/version"
)

const defaultName = "rest"

// Config configures the HTTP adapter.
type Config struct {
	// Name identifies the connection in logs, spans and metrics.
	Name string `yaml:"name" mapstructure:"name"`

	// BaseURL is the root every relative request path is resolved against.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,httpurl"`

	// Timeout bounds each request. Zero leaves the transport default in place.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// AcceptCookies keeps cookies set by the server and replays them on
	// later requests. Defaults to true.
	AcceptCookies *bool `yaml:"accept_cookies" mapstructure:"accept_cookies"`

	// UserAgent overrides the default "restfulcore/<version>" User-Agent.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// TLS configures server verification and client certificates.
	TLS *security.TLSConfig `yaml:"tls" mapstructure:"tls"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.AcceptCookies == nil {
		accept := true
		c.AcceptCookies = &accept
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.TLS.Validate()
}

// CookiesEnabled reports whether the adapter keeps a cookie jar.
func (c *Config) CookiesEnabled() bool {
	return c.AcceptCookies == nil || *c.AcceptCookies
}
