package saxvsm

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timeseries-at-ytg/saxvsm/errs"
	"github.com/timeseries-at-ytg/saxvsm/format"
	"github.com/timeseries-at-ytg/saxvsm/section"
)

func fittedClassifier(t *testing.T) *Classifier {
	t.Helper()

	X, y := twoLevelDataset()
	clf := New(WithNBins(2), WithStrategy(format.StrategyNormal))
	require.NoError(t, clf.Fit(X, y))

	return clf
}

func TestSave_Unfitted(t *testing.T) {
	var buf bytes.Buffer
	err := New().Save(&buf)
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrNotFitted))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	X, _ := twoLevelDataset()
	clf := fittedClassifier(t)
	wantSims, err := clf.DecisionFunction(X)
	require.NoError(t, err)
	wantPred, err := clf.Predict(X)
	require.NoError(t, err)

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, clf.Save(&buf, WithCompression(compression)))

			loaded, err := Load(&buf)
			require.NoError(t, err)
			require.True(t, loaded.IsFitted())

			require.Equal(t, clf.Classes(), loaded.Classes())
			require.Equal(t, clf.Vocabulary(), loaded.Vocabulary())
			require.Equal(t, clf.IDF(), loaded.IDF())

			gotSims, err := loaded.DecisionFunction(X)
			require.NoError(t, err)
			require.Equal(t, wantSims.RawMatrix().Data, gotSims.RawMatrix().Data)

			gotPred, err := loaded.Predict(X)
			require.NoError(t, err)
			require.Equal(t, wantPred, gotPred)
		})
	}
}

func TestLoad_TruncatedHeader(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("SVS")))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidHeaderSize))
}

func TestLoad_BadMagic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fittedClassifier(t).Save(&buf))

	data := buf.Bytes()
	data[0] = 'X'
	_, err := Load(bytes.NewReader(data))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidMagic))
}

func TestLoad_UnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fittedClassifier(t).Save(&buf))

	data := buf.Bytes()
	data[4] = 0x7F
	_, err := Load(bytes.NewReader(data))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrUnsupportedVersion))
}

func TestLoad_CorruptedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fittedClassifier(t).Save(&buf))

	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF
	_, err := Load(bytes.NewReader(data))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrChecksumMismatch))
}

func TestLoad_TruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, fittedClassifier(t).Save(&buf))

	data := buf.Bytes()
	_, err := Load(bytes.NewReader(data[:section.HeaderSize+4]))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidPayload))
}

func TestLoad_OversizedPayloadHeader(t *testing.T) {
	// A crafted header with valid magic and version but an absurd payload
	// size must be rejected, not drive a huge allocation.
	header := section.NewModelHeader(format.CompressionNone)
	header.PayloadSize = 1 << 60

	_, err := Load(bytes.NewReader(header.Bytes()))
	require.Error(t, err)
	require.True(t, errors.Is(err, errs.ErrInvalidPayload))
}

func TestSave_UnknownCompression(t *testing.T) {
	var buf bytes.Buffer
	err := fittedClassifier(t).Save(&buf, WithCompression(format.CompressionType(0x7F)))
	require.Error(t, err)
}
