package envconfig

import "github.com/caarlos0/env/v11"

type displayEnv struct {
	Locale   string `env:"DISPLAY_LOCALE" envDefault:"en-US"`
	Currency string `env:"DISPLAY_CURRENCY" envDefault:"USD"`
}

type display struct {
	raw displayEnv
}

func NewDisplayConfig() (*display, error) {
	var raw displayEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &display{raw: raw}, nil
}

func (cfg *display) Locale() string   { return cfg.raw.Locale }
func (cfg *display) Currency() string { return cfg.raw.Currency }
