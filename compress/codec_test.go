package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timeseries-at-ytg/saxvsm/format"
)

// modelPayload builds a payload resembling a serialized model: repetitive
// vocabulary terms and float text.
func modelPayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteString(`{"term":"aabb","weight":1.6931471805599454},`)
	}

	return buf.Bytes()
}

func TestGetCodec(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"model-like": modelPayload(),
		"short":      []byte("x"),
		"binary":     {0x00, 0xFF, 0x10, 0x20, 0x00, 0x00, 0x7F},
	}

	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		for name, payload := range payloads {
			t.Run(compression.String()+"/"+name, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	payload := modelPayload()

	for _, compression := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should shrink a repetitive payload", compression)
	}
}

func TestNoOp_PassThrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte("as-is")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestZstd_RejectsGarbage(t *testing.T) {
	codec := NewZstdCompressor()
	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
