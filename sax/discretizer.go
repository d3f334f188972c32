package sax

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/timeseries-at-ytg/saxvsm/errs"
	"github.com/timeseries-at-ytg/saxvsm/format"
)

// MinBins and MaxBins bound the alphabet size. The upper bound matches the
// size of the default Latin alphabet.
const (
	MinBins = 2
	MaxBins = 26
)

// Discretizer converts real-valued series into symbolic strings.
//
// A Discretizer is immutable after construction and safe for concurrent use.
type Discretizer struct {
	nBins    int
	strategy format.Strategy
	alphabet []rune

	// normalEdges caches the fixed standard normal quantiles for StrategyNormal.
	normalEdges []float64
}

// NewDiscretizer creates a Discretizer with the given number of bins, binning
// strategy, and alphabet.
//
// Parameters:
//   - nBins: Number of bins, between MinBins and MaxBins inclusive
//   - strategy: Bin edge strategy (uniform, quantile, or normal)
//   - alphabet: Symbols to use, one per bin; nil selects the first nBins
//     letters of the Latin alphabet
//
// Returns:
//   - *Discretizer: The configured discretizer
//   - error: errs.ErrInvalidParameter if nBins, strategy, or alphabet is invalid
func NewDiscretizer(nBins int, strategy format.Strategy, alphabet []rune) (*Discretizer, error) {
	if nBins < MinBins || nBins > MaxBins {
		return nil, fmt.Errorf("%w: n_bins must be between %d and %d, got %d",
			errs.ErrInvalidParameter, MinBins, MaxBins, nBins)
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", errs.ErrInvalidParameter, strategy)
	}
	if alphabet != nil && len(alphabet) != nBins {
		return nil, fmt.Errorf("%w: alphabet must have %d symbols, got %d",
			errs.ErrInvalidParameter, nBins, len(alphabet))
	}

	if alphabet == nil {
		alphabet = make([]rune, nBins)
		for i := range alphabet {
			alphabet[i] = rune('a' + i)
		}
	} else {
		alphabet = slices.Clone(alphabet)
	}

	d := &Discretizer{
		nBins:    nBins,
		strategy: strategy,
		alphabet: alphabet,
	}
	if strategy == format.StrategyNormal {
		d.normalEdges = normalEdges(nBins)
	}

	return d, nil
}

// NBins returns the number of bins.
func (d *Discretizer) NBins() int { return d.nBins }

// Strategy returns the binning strategy.
func (d *Discretizer) Strategy() format.Strategy { return d.strategy }

// Alphabet returns a copy of the alphabet, ordered by bin index.
func (d *Discretizer) Alphabet() []rune { return slices.Clone(d.alphabet) }

// Transform converts each series in X into a symbolic string of the same length.
//
// Parameters:
//   - X: Series matrix, one row per sample
//
// Returns:
//   - []string: One symbolic string per sample, each of length len(X[i])
//   - error: errs.ErrInconsistentShape if a sample is empty
func (d *Discretizer) Transform(X [][]float64) ([]string, error) {
	out := make([]string, len(X))
	for i, sample := range X {
		if len(sample) == 0 {
			return nil, fmt.Errorf("%w: sample %d is empty", errs.ErrInconsistentShape, i)
		}

		edges := d.normalEdges
		if d.strategy != format.StrategyNormal {
			edges = BinEdges(d.strategy, sample, d.nBins)
		}
		out[i] = d.symbolize(sample, edges)
	}

	return out, nil
}

// symbolize maps each value to alphabet[bin], where bin is the number of
// edges strictly less than the value. Values below the first edge land in
// bin 0, values at or above the last edge in bin nBins-1.
func (d *Discretizer) symbolize(sample, edges []float64) string {
	var sb strings.Builder
	sb.Grow(len(sample))
	for _, v := range sample {
		bin := sort.SearchFloat64s(edges, v)
		sb.WriteRune(d.alphabet[bin])
	}

	return sb.String()
}

// BinEdges computes the nBins-1 interior bin edges for the given strategy and
// sample values. The returned edges are sorted in ascending order.
//
// For StrategyNormal the edges do not depend on values and may be computed
// with a nil sample.
func BinEdges(strategy format.Strategy, values []float64, nBins int) []float64 {
	switch strategy {
	case format.StrategyUniform:
		return uniformEdges(values, nBins)
	case format.StrategyQuantile:
		return quantileEdges(values, nBins)
	case format.StrategyNormal:
		return normalEdges(nBins)
	default:
		return nil
	}
}

// uniformEdges spaces edges evenly between the sample min and max.
// A constant sample yields nBins-1 identical edges, which maps every value
// to the lowest bin.
func uniformEdges(values []float64, nBins int) []float64 {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	edges := make([]float64, nBins-1)
	width := (hi - lo) / float64(nBins)
	for i := range edges {
		edges[i] = lo + width*float64(i+1)
	}

	return edges
}

// quantileEdges places edges at the empirical quantiles k/nBins, k=1..nBins-1,
// with linear interpolation between sample points.
func quantileEdges(values []float64, nBins int) []float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	edges := make([]float64, nBins-1)
	for i := range edges {
		p := float64(i+1) / float64(nBins)
		edges[i] = stat.Quantile(p, stat.LinInterp, sorted, nil)
	}

	return edges
}

// normalEdges places edges at the standard normal quantiles k/nBins.
func normalEdges(nBins int) []float64 {
	edges := make([]float64, nBins-1)
	for i := range edges {
		p := float64(i+1) / float64(nBins)
		edges[i] = distuv.UnitNormal.Quantile(p)
	}

	return edges
}
