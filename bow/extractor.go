package bow

import (
	"fmt"
	"math"
	"strings"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

// Window expresses a window length either as an absolute size (Size >= 1) or
// as a fraction of the series length (0 < Fraction <= 1). Exactly one of the
// two forms is active; the zero value is invalid.
type Window struct {
	Size     int
	Fraction float64
}

// Abs returns an absolute window parameter.
func Abs(size int) Window { return Window{Size: size} }

// Frac returns a fractional window parameter, resolved against the series
// length with ceil.
func Frac(fraction float64) Window { return Window{Fraction: fraction} }

// validate checks the window parameter, using name for error context.
func (w Window) validate(name string) error {
	switch {
	case w.Size != 0 && w.Fraction != 0:
		return fmt.Errorf("%w: %s must be an integer or a fraction, not both", errs.ErrInvalidParameter, name)
	case w.Size != 0:
		if w.Size < 1 {
			return fmt.Errorf("%w: %s must be >= 1, got %d", errs.ErrInvalidParameter, name, w.Size)
		}
	case w.Fraction != 0:
		if w.Fraction < 0 || w.Fraction > 1 {
			return fmt.Errorf("%w: fractional %s must be in (0, 1], got %g", errs.ErrInvalidParameter, name, w.Fraction)
		}
	default:
		return fmt.Errorf("%w: %s is not set", errs.ErrInvalidParameter, name)
	}

	return nil
}

// resolve converts the window parameter into an absolute length for a series
// of n symbols.
func (w Window) resolve(n int) int {
	if w.Size != 0 {
		return w.Size
	}

	return int(math.Ceil(w.Fraction * float64(n)))
}

// Extractor slides a window over symbolic strings and joins the extracted
// words into per-sample documents.
//
// An Extractor is immutable after construction and safe for concurrent use.
type Extractor struct {
	windowSize          Window
	windowStep          Window
	numerosityReduction bool
}

// NewExtractor creates an Extractor.
//
// Parameters:
//   - windowSize: Word length, absolute or fractional
//   - windowStep: Distance between consecutive window starts, absolute or fractional
//   - numerosityReduction: Collapse back-to-back identical words when true
//
// Returns:
//   - *Extractor: The configured extractor
//   - error: errs.ErrInvalidParameter if a window parameter is out of range
func NewExtractor(windowSize, windowStep Window, numerosityReduction bool) (*Extractor, error) {
	if err := windowSize.validate("window_size"); err != nil {
		return nil, err
	}
	if err := windowStep.validate("window_step"); err != nil {
		return nil, err
	}

	return &Extractor{
		windowSize:          windowSize,
		windowStep:          windowStep,
		numerosityReduction: numerosityReduction,
	}, nil
}

// NumerosityReduction reports whether back-to-back duplicate words are collapsed.
func (e *Extractor) NumerosityReduction() bool { return e.numerosityReduction }

// Transform converts each symbolic string into a space-joined word document.
//
// A string shorter than the resolved window size yields an empty document;
// downstream term counting treats it as a document with no terms.
func (e *Extractor) Transform(series []string) []string {
	docs := make([]string, len(series))
	for i, s := range series {
		docs[i] = strings.Join(e.words(s), " ")
	}

	return docs
}

// words extracts the (optionally reduced) word sequence from one symbolic
// string. Window size and step count symbols, not bytes, so multi-byte
// alphabets window the same way single-byte ones do.
func (e *Extractor) words(s string) []string {
	symbols := []rune(s)
	n := len(symbols)
	size := e.windowSize.resolve(n)
	step := e.windowStep.resolve(n)
	if size > n {
		return nil
	}

	out := make([]string, 0, (n-size)/step+1)
	for start := 0; start+size <= n; start += step {
		word := string(symbols[start : start+size])
		if e.numerosityReduction && len(out) > 0 && out[len(out)-1] == word {
			continue
		}
		out = append(out, word)
	}

	return out
}
