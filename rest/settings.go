package rest

import (
	"github.com/kbukum/restfulcore/config"
	"github.com/kbukum/restfulcore/errors"
	"github.com/kbukum/restfulcore/httpclient"
	"github.com/kbukum/restfulcore/logger"
)

// Settings is the configuration root for a REST client application.
//
//	connection:
//	  name: players
//	  base_url: https://players.example.com/
//	  timeout: 10s
//	logger:
//	  level: debug
type Settings struct {
	Connection httpclient.Config `yaml:"connection" mapstructure:"connection"`
	Logger     logger.Config     `yaml:"logger" mapstructure:"logger"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (s *Settings) ApplyDefaults() {
	s.Connection.ApplyDefaults()
	s.Logger.ApplyDefaults()
}

// Validate checks both sections.
func (s *Settings) Validate() error {
	if err := s.Connection.Validate(); err != nil {
		return err
	}
	if err := s.Logger.Validate(); err != nil {
		return errors.InvalidConfig(err.Error()).WithCause(err)
	}
	return nil
}

// LoadSettings loads, defaults and validates Settings for serviceName.
func LoadSettings(serviceName string, opts ...config.LoaderOption) (*Settings, error) {
	var s Settings
	if err := config.LoadConfig(serviceName, &s, opts...); err != nil {
		return nil, err
	}
	s.ApplyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewConnection creates a Connection logging through a logger built from
// the settings.
func (s *Settings) NewConnection(opts ...Option) (*Connection, error) {
	log := logger.New(&s.Logger, s.Connection.Name)
	return New(s.Connection, append([]Option{WithLogger(log)}, opts...)...)
}
