package compress

// ZstdCompressor compresses model payloads with Zstandard. It offers the best
// compression ratio of the supported codecs and is the default for model
// files, where load time is dominated by I/O rather than decompression.
//
// Two implementations back this type: a cgo build uses valyala/gozstd, a pure
// Go build falls back to klauspost/compress/zstd. Both produce standard
// Zstandard frames and are wire-compatible.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
