package vsm

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

// Config controls the tf-idf weighting applied to class documents.
type Config struct {
	// UseIDF enables inverse-document-frequency reweighting.
	UseIDF bool
	// SmoothIDF adds one to document frequencies, as if an extra class
	// document contained every term once. Only meaningful with UseIDF.
	SmoothIDF bool
	// SublinearTF replaces tf with 1+ln(tf).
	SublinearTF bool
}

// Vectorizer holds the fitted vector space: the term vocabulary, the per-class
// tf-idf matrix, and the idf vector when idf weighting is enabled.
//
// A Vectorizer is immutable after Fit and safe for concurrent use.
type Vectorizer struct {
	cfg   Config
	terms []string       // index -> term, sorted
	index map[string]int // term -> index

	tfidf    *mat.Dense // nClasses x nVocab, unnormalized
	rowNorms []float64  // Euclidean norm of each tfidf row
	idf      []float64  // nil unless cfg.UseIDF
}

// Fit builds the vector space from one document per class.
//
// Parameters:
//   - cfg: tf-idf weighting configuration
//   - classDocs: Space-joined word documents, one per class, indexed by
//     encoded class label
//
// Returns:
//   - *Vectorizer: The fitted vector space
//   - error: errs.ErrInvalidTarget for fewer than 2 class documents,
//     errs.ErrInvalidParameter if no document contains any term
func Fit(cfg Config, classDocs []string) (*Vectorizer, error) {
	nClasses := len(classDocs)
	if nClasses < 2 {
		return nil, fmt.Errorf("%w: need at least 2 class documents, got %d", errs.ErrInvalidTarget, nClasses)
	}

	// Vocabulary: sorted distinct terms across all class documents.
	seen := make(map[string]struct{})
	for _, doc := range classDocs {
		for _, term := range strings.Fields(doc) {
			seen[term] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary, no words extracted from any class", errs.ErrInvalidParameter)
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	slices.Sort(terms)

	index := make(map[string]int, len(terms))
	for i, term := range terms {
		index[term] = i
	}

	v := &Vectorizer{
		cfg:   cfg,
		terms: terms,
		index: index,
	}

	// Raw term counts per class.
	tfidf := mat.NewDense(nClasses, len(terms), nil)
	for class, doc := range classDocs {
		for _, term := range strings.Fields(doc) {
			i := index[term]
			tfidf.Set(class, i, tfidf.At(class, i)+1)
		}
	}

	if cfg.SublinearTF {
		tfidf.Apply(func(_, _ int, tf float64) float64 {
			if tf > 0 {
				return 1 + math.Log(tf)
			}
			return 0
		}, tfidf)
	}

	if cfg.UseIDF {
		v.idf = idfWeights(tfidf, cfg.SmoothIDF)
		for class := 0; class < nClasses; class++ {
			row := tfidf.RawRowView(class)
			floats.Mul(row, v.idf)
		}
	}

	v.tfidf = tfidf
	v.rowNorms = make([]float64, nClasses)
	for class := 0; class < nClasses; class++ {
		v.rowNorms[class] = floats.Norm(tfidf.RawRowView(class), 2)
	}

	return v, nil
}

// idfWeights computes per-term idf from the class/term count matrix.
//
// With smoothing: idf = ln((1+n)/(1+df)) + 1, otherwise idf = ln(n/df) + 1,
// where df is the number of classes whose document contains the term. Terms
// in the vocabulary always have df >= 1, so the unsmoothed form cannot divide
// by zero.
func idfWeights(counts *mat.Dense, smooth bool) []float64 {
	nClasses, nTerms := counts.Dims()

	idf := make([]float64, nTerms)
	for i := 0; i < nTerms; i++ {
		df := 0
		for class := 0; class < nClasses; class++ {
			if counts.At(class, i) > 0 {
				df++
			}
		}

		if smooth {
			idf[i] = math.Log(float64(1+nClasses)/float64(1+df)) + 1
		} else {
			idf[i] = math.Log(float64(nClasses)/float64(df)) + 1
		}
	}

	return idf
}

// NumClasses returns the number of class vectors.
func (v *Vectorizer) NumClasses() int {
	n, _ := v.tfidf.Dims()
	return n
}

// Terms returns the vocabulary terms ordered by index.
func (v *Vectorizer) Terms() []string { return slices.Clone(v.terms) }

// IDF returns a copy of the idf vector, or nil when idf weighting is disabled.
func (v *Vectorizer) IDF() []float64 {
	if v.idf == nil {
		return nil
	}

	return slices.Clone(v.idf)
}

// TFIDF returns a copy of the n_classes x n_vocabulary tf-idf matrix.
func (v *Vectorizer) TFIDF() *mat.Dense {
	return mat.DenseCopyOf(v.tfidf)
}

// Counts maps each document to its vocabulary term-count vector. Terms that
// are not in the vocabulary are ignored.
//
// Parameters:
//   - docs: Space-joined word documents, one per sample
//
// Returns:
//   - *mat.Dense: n_samples x n_vocabulary raw count matrix
func (v *Vectorizer) Counts(docs []string) *mat.Dense {
	counts := mat.NewDense(len(docs), len(v.terms), nil)
	for sample, doc := range docs {
		for _, term := range strings.Fields(doc) {
			if i, ok := v.index[term]; ok {
				counts.Set(sample, i, counts.At(sample, i)+1)
			}
		}
	}

	return counts
}

// Similarity scores each document against every class vector by cosine
// similarity of its term-count vector and the class tf-idf row.
//
// Documents with no in-vocabulary terms score 0 against every class.
//
// Parameters:
//   - docs: Space-joined word documents, one per sample
//
// Returns:
//   - *mat.Dense: n_samples x n_classes cosine similarity matrix
func (v *Vectorizer) Similarity(docs []string) *mat.Dense {
	counts := v.Counts(docs)
	nClasses := v.NumClasses()

	sims := mat.NewDense(len(docs), nClasses, nil)
	for sample := range docs {
		row := counts.RawRowView(sample)
		norm := floats.Norm(row, 2)
		if norm == 0 {
			continue
		}
		for class := 0; class < nClasses; class++ {
			if v.rowNorms[class] == 0 {
				continue
			}
			dot := floats.Dot(row, v.tfidf.RawRowView(class))
			sims.Set(sample, class, dot/(norm*v.rowNorms[class]))
		}
	}

	return sims
}
