// Package sax implements Symbolic Aggregate approXimation: it converts
// real-valued time series into symbolic strings over a fixed alphabet.
//
// Each value of a series is mapped to one of n_bins bins and replaced by the
// corresponding alphabet symbol. Bin edges are computed per strategy:
//
//   - uniform: edges evenly spaced between the per-sample min and max
//   - quantile: edges at the per-sample empirical quantiles
//   - normal: edges at standard normal quantiles, independent of the sample
//
// The uniform and quantile strategies recompute edges per sample on every
// transform, so a Discretizer carries no per-dataset state; normal edges are
// fixed at construction time.
//
// # Basic Usage
//
//	disc, err := sax.NewDiscretizer(4, format.StrategyQuantile, nil)
//	if err != nil {
//	    return err
//	}
//	words, err := disc.Transform([][]float64{{1.0, 2.0, 3.0, 4.0}})
//	// words[0] == "abcd"
package sax
