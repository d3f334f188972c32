package saxvsm

import (
	"github.com/timeseries-at-ytg/saxvsm/bow"
	"github.com/timeseries-at-ytg/saxvsm/format"
	"github.com/timeseries-at-ytg/saxvsm/internal/options"
)

// config holds the classifier configuration. All values are validated by Fit.
type config struct {
	nBins    int
	strategy format.Strategy
	alphabet []rune

	windowSize          bow.Window
	windowStep          bow.Window
	numerosityReduction bool

	useIDF      bool
	smoothIDF   bool
	sublinearTF bool
}

func defaultConfig() config {
	return config{
		nBins:               4,
		strategy:            format.StrategyQuantile,
		windowSize:          bow.Abs(4),
		windowStep:          bow.Abs(1),
		numerosityReduction: true,
		useIDF:              true,
		smoothIDF:           false,
		sublinearTF:         true,
	}
}

// Option is a functional option for the Classifier.
type Option = options.Option[*config]

// WithNBins sets the alphabet size (number of bins), between 2 and 26.
func WithNBins(n int) Option {
	return options.NoError(func(cfg *config) {
		cfg.nBins = n
	})
}

// WithStrategy sets the bin edge strategy.
func WithStrategy(s format.Strategy) Option {
	return options.NoError(func(cfg *config) {
		cfg.strategy = s
	})
}

// WithAlphabet sets an explicit alphabet. The string must contain exactly
// n_bins symbols, ordered by bin index. An empty string restores the default
// Latin alphabet.
func WithAlphabet(alphabet string) Option {
	return options.NoError(func(cfg *config) {
		if alphabet == "" {
			cfg.alphabet = nil
			return
		}
		cfg.alphabet = []rune(alphabet)
	})
}

// WithWindowSize sets the word length in symbols (>= 1).
func WithWindowSize(size int) Option {
	return options.NoError(func(cfg *config) {
		cfg.windowSize = bow.Abs(size)
	})
}

// WithWindowFraction sets the word length as a fraction of the series length
// in (0, 1], resolved with ceil.
func WithWindowFraction(fraction float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.windowSize = bow.Frac(fraction)
	})
}

// WithWindowStep sets the distance between consecutive windows in symbols (>= 1).
func WithWindowStep(step int) Option {
	return options.NoError(func(cfg *config) {
		cfg.windowStep = bow.Abs(step)
	})
}

// WithWindowStepFraction sets the window step as a fraction of the series
// length in (0, 1], resolved with ceil.
func WithWindowStepFraction(fraction float64) Option {
	return options.NoError(func(cfg *config) {
		cfg.windowStep = bow.Frac(fraction)
	})
}

// WithNumerosityReduction toggles collapsing of back-to-back identical words.
func WithNumerosityReduction(enabled bool) Option {
	return options.NoError(func(cfg *config) {
		cfg.numerosityReduction = enabled
	})
}

// WithIDF toggles inverse-document-frequency reweighting.
func WithIDF(enabled bool) Option {
	return options.NoError(func(cfg *config) {
		cfg.useIDF = enabled
	})
}

// WithSmoothIDF toggles idf smoothing (adds one to document frequencies).
func WithSmoothIDF(enabled bool) Option {
	return options.NoError(func(cfg *config) {
		cfg.smoothIDF = enabled
	})
}

// WithSublinearTF toggles sublinear term-frequency scaling (1+ln(tf)).
func WithSublinearTF(enabled bool) Option {
	return options.NoError(func(cfg *config) {
		cfg.sublinearTF = enabled
	})
}
