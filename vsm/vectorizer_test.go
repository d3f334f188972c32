package vsm

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timeseries-at-ytg/saxvsm/errs"
)

func TestFit_Validation(t *testing.T) {
	_, err := Fit(Config{}, []string{"aa ab"})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidTarget))

	_, err = Fit(Config{}, []string{"", ""})
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidParameter))
}

func TestFit_VocabularyIsSortedAndDeterministic(t *testing.T) {
	v, err := Fit(Config{}, []string{"ba aa ba", "cc aa"})
	require.NoError(t, err)
	require.Equal(t, []string{"aa", "ba", "cc"}, v.Terms())

	// Same input always yields the same vocabulary and matrix.
	v2, err := Fit(Config{}, []string{"ba aa ba", "cc aa"})
	require.NoError(t, err)
	require.Equal(t, v.Terms(), v2.Terms())
	require.Equal(t, v.TFIDF().RawMatrix().Data, v2.TFIDF().RawMatrix().Data)
}

func TestFit_RawCounts(t *testing.T) {
	// No weighting at all: the matrix is the raw class/term count table.
	v, err := Fit(Config{}, []string{"aa aa ab", "bb ab"})
	require.NoError(t, err)

	tfidf := v.TFIDF()
	rows, cols := tfidf.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)

	// Vocabulary order: aa, ab, bb.
	require.Equal(t, []float64{2, 1, 0}, tfidf.RawRowView(0))
	require.Equal(t, []float64{0, 1, 1}, tfidf.RawRowView(1))
	require.Nil(t, v.IDF())
}

func TestFit_SublinearTF(t *testing.T) {
	v, err := Fit(Config{SublinearTF: true}, []string{"aa aa ab", "bb ab"})
	require.NoError(t, err)

	tfidf := v.TFIDF()
	require.InDelta(t, 1+math.Log(2), tfidf.At(0, 0), 1e-12)
	require.InDelta(t, 1.0, tfidf.At(0, 1), 1e-12)
	require.InDelta(t, 0.0, tfidf.At(0, 2), 1e-12)
}

func TestFit_IDF(t *testing.T) {
	// df(aa)=1, df(ab)=2, df(bb)=1 over 2 class documents.
	v, err := Fit(Config{UseIDF: true}, []string{"aa aa ab", "bb ab"})
	require.NoError(t, err)

	idf := v.IDF()
	require.Len(t, idf, 3)
	require.InDelta(t, math.Log(2)+1, idf[0], 1e-12)
	require.InDelta(t, 1.0, idf[1], 1e-12)
	require.InDelta(t, math.Log(2)+1, idf[2], 1e-12)

	tfidf := v.TFIDF()
	require.InDelta(t, 2*(math.Log(2)+1), tfidf.At(0, 0), 1e-12)
	require.InDelta(t, 1.0, tfidf.At(0, 1), 1e-12)
}

func TestFit_SmoothIDF(t *testing.T) {
	v, err := Fit(Config{UseIDF: true, SmoothIDF: true}, []string{"aa aa ab", "bb ab"})
	require.NoError(t, err)

	idf := v.IDF()
	require.InDelta(t, math.Log(3.0/2.0)+1, idf[0], 1e-12)
	require.InDelta(t, 1.0, idf[1], 1e-12)
	require.InDelta(t, math.Log(3.0/2.0)+1, idf[2], 1e-12)
}

func TestCounts_IgnoresOutOfVocabularyTerms(t *testing.T) {
	v, err := Fit(Config{}, []string{"aa ab", "bb"})
	require.NoError(t, err)

	counts := v.Counts([]string{"aa zz aa yy bb"})
	require.Equal(t, []float64{2, 0, 1}, counts.RawRowView(0))
}

func TestSimilarity_Range(t *testing.T) {
	v, err := Fit(Config{UseIDF: true, SublinearTF: true}, []string{"aa aa ab ac", "bb ab bc bc"})
	require.NoError(t, err)

	sims := v.Similarity([]string{"aa ab", "bb bc", "zz", ""})
	rows, cols := sims.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s := sims.At(i, j)
			require.False(t, math.IsNaN(s))
			require.GreaterOrEqual(t, s, -1.0)
			require.LessOrEqual(t, s, 1.0)
		}
	}

	// Documents with no in-vocabulary terms score 0 everywhere.
	require.Equal(t, 0.0, sims.At(2, 0))
	require.Equal(t, 0.0, sims.At(2, 1))
	require.Equal(t, 0.0, sims.At(3, 0))
}

func TestSimilarity_MatchesHandComputedCosine(t *testing.T) {
	v, err := Fit(Config{}, []string{"aa aa ab", "bb ab"})
	require.NoError(t, err)

	// Count vector of "aa aa" is (2,0,0); class 0 row is (2,1,0).
	sims := v.Similarity([]string{"aa aa"})
	want := 4.0 / (2.0 * math.Sqrt(5.0))
	require.InDelta(t, want, sims.At(0, 0), 1e-12)
	require.Equal(t, 0.0, sims.At(0, 1))
}

func TestSimilarity_OwnClassDocumentIsMaximal(t *testing.T) {
	// With plain counts, a sample that reproduces its class document
	// exactly must score highest against its own class.
	classDocs := []string{"aa aa ab ab ac", "bb bb bc cc cc"}
	v, err := Fit(Config{}, classDocs)
	require.NoError(t, err)

	sims := v.Similarity(classDocs)
	require.Greater(t, sims.At(0, 0), sims.At(0, 1))
	require.Greater(t, sims.At(1, 1), sims.At(1, 0))
}

func TestRestore_RoundTrip(t *testing.T) {
	cfg := Config{UseIDF: true, SublinearTF: true}
	v, err := Fit(cfg, []string{"aa aa ab", "bb ab"})
	require.NoError(t, err)

	tfidf := v.TFIDF()
	rows, cols := tfidf.Dims()
	rowData := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		rowData[i] = make([]float64, cols)
		copy(rowData[i], tfidf.RawRowView(i))
	}

	restored, err := Restore(cfg, v.Terms(), rowData, v.IDF())
	require.NoError(t, err)

	docs := []string{"aa ab", "bb bb", ""}
	require.Equal(t, v.Similarity(docs).RawMatrix().Data, restored.Similarity(docs).RawMatrix().Data)
}

func TestRestore_Validation(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		terms []string
		tfidf [][]float64
		idf   []float64
	}{
		{name: "empty vocabulary", terms: nil, tfidf: [][]float64{{}, {}}},
		{name: "single class", terms: []string{"aa"}, tfidf: [][]float64{{1}}},
		{name: "ragged rows", terms: []string{"aa", "ab"}, tfidf: [][]float64{{1, 2}, {1}}},
		{name: "missing idf", cfg: Config{UseIDF: true}, terms: []string{"aa"}, tfidf: [][]float64{{1}, {2}}},
		{name: "unexpected idf", terms: []string{"aa"}, tfidf: [][]float64{{1}, {2}}, idf: []float64{1}},
		{name: "duplicate terms", terms: []string{"aa", "aa"}, tfidf: [][]float64{{1, 2}, {3, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Restore(tt.cfg, tt.terms, tt.tfidf, tt.idf)
			require.Error(t, err)
			require.True(t, errors.Is(err, errs.ErrInvalidPayload))
		})
	}
}
