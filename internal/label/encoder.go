// Package label encodes class labels as contiguous integer indices.
package label

import (
	"fmt"
	"slices"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

// Encoder maps string class labels to indices 0..n_classes-1 and back.
// Classes are ordered lexicographically, so the mapping depends only on the
// set of labels, not on their order of appearance.
type Encoder struct {
	classes []string
	index   map[string]int
}

// Fit builds the encoder from the training labels and returns the encoded
// indices alongside it.
//
// Returns errs.ErrInvalidTarget when fewer than 2 distinct classes are present.
func Fit(y []string) (*Encoder, []int, error) {
	seen := make(map[string]struct{}, len(y))
	for _, l := range y {
		seen[l] = struct{}{}
	}
	if len(seen) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 classes, got %d", errs.ErrInvalidTarget, len(seen))
	}

	classes := make([]string, 0, len(seen))
	for l := range seen {
		classes = append(classes, l)
	}
	slices.Sort(classes)

	index := make(map[string]int, len(classes))
	for i, l := range classes {
		index[l] = i
	}

	enc := &Encoder{classes: classes, index: index}

	encoded := make([]int, len(y))
	for i, l := range y {
		encoded[i] = index[l]
	}

	return enc, encoded, nil
}

// Restore rebuilds an encoder from a previously fitted, sorted class list.
// Used when loading a serialized model.
func Restore(classes []string) *Encoder {
	index := make(map[string]int, len(classes))
	for i, l := range classes {
		index[l] = i
	}

	return &Encoder{classes: slices.Clone(classes), index: index}
}

// Classes returns the class labels ordered by encoded index.
func (e *Encoder) Classes() []string { return slices.Clone(e.classes) }

// NumClasses returns the number of distinct classes.
func (e *Encoder) NumClasses() int { return len(e.classes) }

// Label returns the class label for an encoded index.
func (e *Encoder) Label(index int) string { return e.classes[index] }
