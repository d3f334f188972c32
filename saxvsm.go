// Package saxvsm implements the SAX-VSM time-series classifier: series are
// discretized into symbolic words (SAX), aggregated into per-class tf-idf
// vectors (VSM), and new series are classified by cosine similarity against
// the class vectors.
//
// # Basic Usage
//
// Training and prediction:
//
//	clf := saxvsm.New(
//	    saxvsm.WithNBins(4),
//	    saxvsm.WithStrategy(format.StrategyQuantile),
//	    saxvsm.WithWindowSize(8),
//	)
//	if err := clf.Fit(trainX, trainY); err != nil {
//	    return err
//	}
//	labels, err := clf.Predict(testX)
//
// Persisting a fitted model:
//
//	f, _ := os.Create("model.svsm")
//	err := clf.Save(f)
//
//	f, _ = os.Open("model.svsm")
//	clf, err := saxvsm.Load(f)
//
// All configuration is validated lazily when Fit runs. A classifier carries
// no hidden mutable caches: once fitted, DecisionFunction and Predict are
// pure reads and safe for concurrent use.
package saxvsm

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/timeseries-at-ytg/saxvsm/bow"
	"github.com/timeseries-at-ytg/saxvsm/errs"
	"github.com/timeseries-at-ytg/saxvsm/internal/label"
	"github.com/timeseries-at-ytg/saxvsm/internal/options"
	"github.com/timeseries-at-ytg/saxvsm/sax"
	"github.com/timeseries-at-ytg/saxvsm/vsm"
)

// Classifier is the SAX-VSM classifier.
//
// The zero-value Classifier is not usable; construct one with New. A
// Classifier starts unfitted: DecisionFunction and Predict return
// errs.ErrNotFitted until Fit succeeds.
type Classifier struct {
	cfg config

	// optErr defers option application failures to Fit, which is where all
	// configuration validation is surfaced.
	optErr error

	fitted bool

	disc   *sax.Discretizer
	ext    *bow.Extractor
	vec    *vsm.Vectorizer
	labels *label.Encoder
}

// New creates a Classifier with the given options applied over the defaults
// (n_bins=4, strategy=quantile, window_size=4, window_step=1, numerosity
// reduction on, idf on, smooth idf off, sublinear tf on).
//
// Option values are validated by Fit, not here.
func New(opts ...Option) *Classifier {
	c := &Classifier{cfg: defaultConfig()}
	c.optErr = options.Apply(&c.cfg, opts...)

	return c
}

// IsFitted reports whether Fit has completed successfully.
func (c *Classifier) IsFitted() bool { return c.fitted }

// Fit trains the classifier on the labeled series.
//
// Parameters:
//   - X: Series matrix, n_samples x n_timestamps, all rows the same length
//   - y: Class label per sample
//
// Returns:
//   - error: errs.ErrInvalidParameter for invalid configuration,
//     errs.ErrInconsistentShape for mismatched X/y shapes, or
//     errs.ErrInvalidTarget for fewer than 2 distinct classes
//
// On error the classifier remains unfitted.
func (c *Classifier) Fit(X [][]float64, y []string) error {
	if c.optErr != nil {
		return c.optErr
	}
	if err := validateShape(X); err != nil {
		return err
	}
	if len(X) != len(y) {
		return fmt.Errorf("%w: X has %d samples, y has %d labels", errs.ErrInconsistentShape, len(X), len(y))
	}

	labels, yIdx, err := label.Fit(y)
	if err != nil {
		return err
	}

	disc, err := sax.NewDiscretizer(c.cfg.nBins, c.cfg.strategy, c.cfg.alphabet)
	if err != nil {
		return err
	}
	ext, err := bow.NewExtractor(c.cfg.windowSize, c.cfg.windowStep, c.cfg.numerosityReduction)
	if err != nil {
		return err
	}

	symbolic, err := disc.Transform(X)
	if err != nil {
		return err
	}
	docs := ext.Transform(symbolic)

	// One concatenated document per class, in encoded label order.
	classDocs := make([][]string, labels.NumClasses())
	for i, doc := range docs {
		if doc == "" {
			continue
		}
		classDocs[yIdx[i]] = append(classDocs[yIdx[i]], doc)
	}
	joined := make([]string, len(classDocs))
	for class, parts := range classDocs {
		joined[class] = strings.Join(parts, " ")
	}

	vec, err := vsm.Fit(c.vsmConfig(), joined)
	if err != nil {
		return err
	}

	c.disc = disc
	c.ext = ext
	c.vec = vec
	c.labels = labels
	c.fitted = true

	return nil
}

// DecisionFunction scores each series against every class by cosine
// similarity between its vocabulary term counts and the class tf-idf vector.
//
// Parameters:
//   - X: Series matrix, n_samples x n_timestamps
//
// Returns:
//   - *mat.Dense: n_samples x n_classes similarity matrix, values in [-1, 1]
//   - error: errs.ErrNotFitted before Fit, errs.ErrInconsistentShape for
//     malformed X
func (c *Classifier) DecisionFunction(X [][]float64) (*mat.Dense, error) {
	if !c.fitted {
		return nil, fmt.Errorf("%w: call Fit before DecisionFunction", errs.ErrNotFitted)
	}
	if err := validateShape(X); err != nil {
		return nil, err
	}

	symbolic, err := c.disc.Transform(X)
	if err != nil {
		return nil, err
	}

	return c.vec.Similarity(c.ext.Transform(symbolic)), nil
}

// Predict returns the class label with the highest similarity for each
// series. Ties resolve to the lowest class index.
//
// Parameters:
//   - X: Series matrix, n_samples x n_timestamps
//
// Returns:
//   - []string: Predicted class label per sample
//   - error: Same failure modes as DecisionFunction
func (c *Classifier) Predict(X [][]float64) ([]string, error) {
	sims, err := c.DecisionFunction(X)
	if err != nil {
		return nil, err
	}

	n, _ := sims.Dims()
	pred := make([]string, n)
	for i := 0; i < n; i++ {
		pred[i] = c.labels.Label(floats.MaxIdx(sims.RawRowView(i)))
	}

	return pred, nil
}

// Classes returns the class labels ordered by encoded index, or nil before Fit.
func (c *Classifier) Classes() []string {
	if !c.fitted {
		return nil
	}

	return c.labels.Classes()
}

// Vocabulary returns the fitted vocabulary terms ordered by index, or nil
// before Fit.
func (c *Classifier) Vocabulary() []string {
	if !c.fitted {
		return nil
	}

	return c.vec.Terms()
}

// TFIDF returns a copy of the fitted n_classes x n_vocabulary tf-idf matrix,
// or nil before Fit.
func (c *Classifier) TFIDF() *mat.Dense {
	if !c.fitted {
		return nil
	}

	return c.vec.TFIDF()
}

// IDF returns a copy of the fitted idf vector. It is nil before Fit and nil
// when idf weighting is disabled.
func (c *Classifier) IDF() []float64 {
	if !c.fitted {
		return nil
	}

	return c.vec.IDF()
}

func (c *Classifier) vsmConfig() vsm.Config {
	return vsm.Config{
		UseIDF:      c.cfg.useIDF,
		SmoothIDF:   c.cfg.smoothIDF,
		SublinearTF: c.cfg.sublinearTF,
	}
}

// validateShape rejects empty and ragged series matrices.
func validateShape(X [][]float64) error {
	if len(X) == 0 {
		return fmt.Errorf("%w: X has no samples", errs.ErrInconsistentShape)
	}
	width := len(X[0])
	if width == 0 {
		return fmt.Errorf("%w: samples have no timestamps", errs.ErrInconsistentShape)
	}
	for i, row := range X {
		if len(row) != width {
			return fmt.Errorf("%w: sample %d has %d timestamps, sample 0 has %d",
				errs.ErrInconsistentShape, i, len(row), width)
		}
	}

	return nil
}
