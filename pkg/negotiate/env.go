package negotiate

import (
	"os"
	"path/filepath"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// EnvConfig is the environment form of a Config, parsed with caarlos0/env.
//
//	LANG_WILDCARD=en
//	LANG_URL_SEGMENT=0
//	LANG_WEIGHTS=en:1,de:0.5
//	LANG_WEIGHTS_FILE=/etc/app/weights.yaml
type EnvConfig struct {
	Weights            map[string]float64 `env:"LANG_WEIGHTS" envKeyValSeparator:":"`
	URLSegment         *int               `env:"LANG_URL_SEGMENT"`
	WeightsFile        string             `env:"LANG_WEIGHTS_FILE"`
	Wildcard           langcode.Code      `env:"LANG_WILDCARD"`
	ReportFirstFailure bool               `env:"LANG_REPORT_FIRST_FAILURE" envDefault:"false"`
}

// Options converts the environment configuration into Config options.
// File weights are applied before LANG_WEIGHTS, so the variable overrides the file.
func (e EnvConfig) Options() ([]Option, error) {
	var opts []Option

	if e.WeightsFile != "" {
		opts = append(opts, WithWeightsFile(os.DirFS(filepath.Dir(e.WeightsFile)), filepath.Base(e.WeightsFile)))
	}

	if len(e.Weights) > 0 {
		weights, err := parseWeights(e.Weights)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithWeights(weights))
	}

	if e.URLSegment != nil {
		opts = append(opts, WithURLSegment(*e.URLSegment))
	}

	if e.Wildcard.IsValid() {
		opts = append(opts, WithWildcard(e.Wildcard))
	}

	if e.ReportFirstFailure {
		opts = append(opts, ReportFirstFailure())
	}

	return opts, nil
}

// FromEnv builds a Config from e plus any extra options, e.g. a custom resolver.
func FromEnv(e EnvConfig, extra ...Option) (*Config, error) {
	opts, err := e.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
