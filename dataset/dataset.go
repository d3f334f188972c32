// Package dataset loads labeled time-series datasets from delimited text files.
//
// The expected layout follows the UCR archive convention: one sample per row,
// the class label in the first column, and the series values in the remaining
// columns. Both comma- and tab-separated files are accepted; the delimiter is
// detected from the first line.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

// Dataset holds a labeled set of fixed-length series.
type Dataset struct {
	// X is the series matrix, one row per sample.
	X [][]float64
	// Y holds the class label of each sample.
	Y []string
}

// Load reads a UCR-style delimited file from path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads a UCR-style delimited dataset from r.
//
// Every row must have the same number of columns; the first column is the
// label, the rest are parsed as floats.
func Read(r io.Reader) (*Dataset, error) {
	br := bufio.NewReader(r)

	delim, err := detectDelimiter(br)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.TrimLeadingSpace = true

	ds := &Dataset{}
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read dataset row %d: %w", row, err)
		}
		if len(rec) < 2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, need a label and at least one value",
				errs.ErrInconsistentShape, row, len(rec))
		}

		sample := make([]float64, len(rec)-1)
		for i, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d column %d: %w", row, i+1, err)
			}
			sample[i] = v
		}

		ds.X = append(ds.X, sample)
		ds.Y = append(ds.Y, rec[0])
	}

	if len(ds.X) == 0 {
		return nil, fmt.Errorf("%w: dataset is empty", errs.ErrInconsistentShape)
	}
	for row, sample := range ds.X {
		if len(sample) != len(ds.X[0]) {
			return nil, fmt.Errorf("%w: row %d has %d timestamps, row 0 has %d",
				errs.ErrInconsistentShape, row, len(sample), len(ds.X[0]))
		}
	}

	return ds, nil
}

// detectDelimiter peeks at the first line and picks tab when it contains one,
// falling back to comma. csv.Reader requires a single configured delimiter.
func detectDelimiter(br *bufio.Reader) (rune, error) {
	const peekSize = 4096

	head, err := br.Peek(peekSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, fmt.Errorf("failed to detect dataset delimiter: %w", err)
	}
	if i := bytes.IndexByte(head, '\n'); i >= 0 {
		head = head[:i]
	}
	if bytes.IndexByte(head, '\t') >= 0 {
		return '\t', nil
	}

	return ',', nil
}

// NumSamples returns the number of samples.
func (d *Dataset) NumSamples() int { return len(d.X) }

// NumTimestamps returns the series length, or 0 for an empty dataset.
func (d *Dataset) NumTimestamps() int {
	if len(d.X) == 0 {
		return 0
	}

	return len(d.X[0])
}

// Synthetic generates a deterministic two-class toy dataset for demos and
// tests: class "low" samples oscillate around 0, class "high" around level.
// Samples alternate between the classes.
func Synthetic(nSamples, nTimestamps int, level float64) *Dataset {
	ds := &Dataset{
		X: make([][]float64, nSamples),
		Y: make([]string, nSamples),
	}
	for i := 0; i < nSamples; i++ {
		sample := make([]float64, nTimestamps)
		offset := 0.0
		if i%2 == 1 {
			offset = level
		}
		for t := 0; t < nTimestamps; t++ {
			// Deterministic waveform; phase varies per sample so the
			// two classes overlap in shape but not in level.
			sample[t] = offset + math.Sin(float64(t)+float64(i)*0.5)
		}
		ds.X[i] = sample

		if i%2 == 1 {
			ds.Y[i] = "high"
		} else {
			ds.Y[i] = "low"
		}
	}

	return ds
}
