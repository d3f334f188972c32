// Package compress provides the compression codecs applied to serialized
// model payloads.
//
// A model file stores the fitted classifier state as a single payload; the
// codec chosen at save time is recorded in the file header so that loading
// always picks the matching decompressor. Four algorithms are supported:
//
//   - None: no compression, payload stored verbatim
//   - Zstd: best compression ratio, the default for model files
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression
//
// Model payloads are dominated by vocabulary terms and float matrices, both
// highly repetitive, so even the fast codecs compress them well.
//
// The package defines the Compressor, Decompressor, and Codec interfaces;
// all built-in codecs are stateless values that are safe for concurrent use.
package compress
