package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

func TestRead_CommaSeparated(t *testing.T) {
	ds, err := Read(strings.NewReader("up,1.0,2.0,3.0\ndown,3.5,2.5,1.5\n"))
	require.NoError(t, err)

	require.Equal(t, 2, ds.NumSamples())
	require.Equal(t, 3, ds.NumTimestamps())
	require.Equal(t, []string{"up", "down"}, ds.Y)
	require.Equal(t, []float64{1.0, 2.0, 3.0}, ds.X[0])
	require.Equal(t, []float64{3.5, 2.5, 1.5}, ds.X[1])
}

func TestRead_TabSeparated(t *testing.T) {
	ds, err := Read(strings.NewReader("1\t0.5\t-0.5\n2\t1.5\t2.5\n"))
	require.NoError(t, err)

	require.Equal(t, []string{"1", "2"}, ds.Y)
	require.Equal(t, []float64{0.5, -0.5}, ds.X[0])
}

func TestRead_Invalid(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := Read(strings.NewReader(""))
		require.Error(t, err)
		require.True(t, errors.Is(err, errs.ErrInconsistentShape))
	})

	t.Run("label only", func(t *testing.T) {
		_, err := Read(strings.NewReader("up\n"))
		require.Error(t, err)
		require.True(t, errors.Is(err, errs.ErrInconsistentShape))
	})

	t.Run("non-numeric value", func(t *testing.T) {
		_, err := Read(strings.NewReader("up,1.0,oops\n"))
		require.Error(t, err)
	})
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toy.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,0,0\nb,9,9\n"), 0o644))

	ds, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, ds.NumSamples())

	_, err = Load(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestSynthetic(t *testing.T) {
	ds := Synthetic(10, 16, 25.0)

	require.Equal(t, 10, ds.NumSamples())
	require.Equal(t, 16, ds.NumTimestamps())

	for i := range ds.Y {
		if i%2 == 0 {
			require.Equal(t, "low", ds.Y[i])
			require.Less(t, ds.X[i][0], 10.0)
		} else {
			require.Equal(t, "high", ds.Y[i])
			require.Greater(t, ds.X[i][0], 10.0)
		}
	}

	// Deterministic.
	require.Equal(t, ds.X, Synthetic(10, 16, 25.0).X)
}
