package vsm

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

// Restore rebuilds a fitted Vectorizer from previously serialized state.
//
// Parameters:
//   - cfg: The weighting configuration the vector space was fitted with
//   - terms: Vocabulary terms ordered by index
//   - tfidf: Per-class tf-idf rows, each of length len(terms)
//   - idf: idf vector of length len(terms), or nil when idf was disabled
//
// Returns:
//   - *Vectorizer: The restored vector space
//   - error: errs.ErrInvalidPayload when the shapes are inconsistent
func Restore(cfg Config, terms []string, tfidf [][]float64, idf []float64) (*Vectorizer, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary", errs.ErrInvalidPayload)
	}
	if len(tfidf) < 2 {
		return nil, fmt.Errorf("%w: %d tf-idf rows, need at least 2", errs.ErrInvalidPayload, len(tfidf))
	}
	for class, row := range tfidf {
		if len(row) != len(terms) {
			return nil, fmt.Errorf("%w: tf-idf row %d has %d terms, vocabulary has %d",
				errs.ErrInvalidPayload, class, len(row), len(terms))
		}
	}
	if cfg.UseIDF && len(idf) != len(terms) {
		return nil, fmt.Errorf("%w: idf vector has %d terms, vocabulary has %d",
			errs.ErrInvalidPayload, len(idf), len(terms))
	}
	if !cfg.UseIDF && idf != nil {
		return nil, fmt.Errorf("%w: idf vector present but idf weighting is disabled", errs.ErrInvalidPayload)
	}

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		if _, dup := index[term]; dup {
			return nil, fmt.Errorf("%w: duplicate vocabulary term %q", errs.ErrInvalidPayload, term)
		}
		index[term] = i
	}

	dense := mat.NewDense(len(tfidf), len(terms), nil)
	rowNorms := make([]float64, len(tfidf))
	for class, row := range tfidf {
		dense.SetRow(class, row)
		rowNorms[class] = floats.Norm(row, 2)
	}

	return &Vectorizer{
		cfg:      cfg,
		terms:    slices.Clone(terms),
		index:    index,
		tfidf:    dense,
		rowNorms: rowNorms,
		idf:      slices.Clone(idf),
	}, nil
}
