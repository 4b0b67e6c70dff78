package negotiate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Format is the encoding of a weights document.
type Format uint8

const (
	FormatYAML Format = iota + 1
	FormatJSON
)

// FormatFromPath picks the format from a file extension (.yaml, .yml or .json).
func FormatFromPath(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}

// LoadWeights decodes a flat document mapping language codes to support weights:
//
//	en: 1.0
//	de: 0.5
//	es: 0.8
func LoadWeights(r io.Reader, format Format) (map[langcode.Code]float64, error) {
	raw := make(map[string]float64)

	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("negotiate: decode yaml weights: %w", err)
		}
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raw); err != nil {
			return nil, fmt.Errorf("negotiate: decode json weights: %w", err)
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	return parseWeights(raw)
}

// WithWeightsFile loads support weights from a YAML or JSON file in fsys.
func WithWeightsFile(fsys fs.FS, name string) Option {
	return func(c *Config) error {
		format, err := FormatFromPath(name)
		if err != nil {
			return err
		}

		f, err := fsys.Open(name)
		if err != nil {
			return fmt.Errorf("negotiate: open weights file: %w", err)
		}
		defer func() { _ = f.Close() }()

		weights, err := LoadWeights(f, format)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return WithWeights(weights)(c)
	}
}

func parseWeights(raw map[string]float64) (map[langcode.Code]float64, error) {
	weights := make(map[langcode.Code]float64, len(raw))
	for code, q := range raw {
		lang, err := langcode.Parse(strings.TrimSpace(code))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCode, err)
		}
		weights[lang] = q
	}
	return weights, nil
}
