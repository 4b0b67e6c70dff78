package negotiate

import (
	"math"

	"github.com/dmitrymomot/langneg/pkg/langcode"
)

// Weights is the server's support quality for every known language.
// The zero value supports nothing: every entry is 0.0.
type Weights struct {
	q [langcode.Count]float64
}

// Set assigns the support weight of c. Invalid codes are ignored.
func (w *Weights) Set(c langcode.Code, q float64) {
	if c.IsValid() {
		w.q[c-1] = q
	}
}

// Get returns the support weight of c, 0.0 for invalid codes.
func (w *Weights) Get(c langcode.Code) float64 {
	if !c.IsValid() {
		return 0
	}
	return w.q[c-1]
}

// Supports reports whether c has a usable weight: neither 0.0 nor NaN.
func (w *Weights) Supports(c langcode.Code) bool {
	return supported(w.Get(c))
}

// Supported lists the codes with usable weights in catalog order.
func (w *Weights) Supported() []langcode.Code {
	var out []langcode.Code
	for i, q := range w.q {
		if supported(q) {
			out = append(out, langcode.Code(i+1))
		}
	}
	return out
}

func supported(q float64) bool {
	return q != 0 && !math.IsNaN(q)
}
