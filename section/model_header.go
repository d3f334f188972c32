// Package section defines the binary sections of saxvsm model files.
//
// A model file consists of a fixed-size header followed by a single payload
// section holding the compressed, serialized classifier state. The header
// records the payload codec, its stored size, and an xxHash64 checksum so
// that a corrupted or truncated file is rejected before deserialization.
package section

import (
	"encoding/binary"
	"fmt"

	"github.com/timeseries-at-ytg/saxvsm/errs"
	"github.com/timeseries-at-ytg/saxvsm/format"
)

const (
	// HeaderSize is the fixed size of the model file header in bytes.
	HeaderSize = 24

	// ModelVersionV1 is the only model file version this build reads and writes.
	ModelVersionV1 = 0x1
)

// Magic identifies saxvsm model files. It occupies the first four bytes.
var Magic = [4]byte{'S', 'V', 'S', 'M'}

// ModelHeader is the fixed-size header at the start of a model file.
// All multi-byte fields are little-endian.
type ModelHeader struct {
	// Version is the model file format version. byte offset 4
	Version uint8
	// Compression is the codec applied to the payload. byte offset 5
	Compression format.CompressionType
	// PayloadSize is the stored (compressed) payload size in bytes. byte offset 8-15
	PayloadSize uint64
	// Checksum is the xxHash64 of the stored payload bytes. byte offset 16-23
	Checksum uint64
}

// NewModelHeader creates a v1 header for a payload compressed with the given codec.
// PayloadSize and Checksum are filled in when the payload is finalized.
func NewModelHeader(compression format.CompressionType) *ModelHeader {
	return &ModelHeader{
		Version:     ModelVersionV1,
		Compression: compression,
	}
}

// Bytes serializes the header into a HeaderSize byte slice.
func (h *ModelHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	copy(b[0:4], Magic[:])
	b[4] = h.Version
	b[5] = uint8(h.Compression)
	// bytes 6-7 reserved, zero
	binary.LittleEndian.PutUint64(b[8:16], h.PayloadSize)
	binary.LittleEndian.PutUint64(b[16:24], h.Checksum)

	return b
}

// Parse parses and validates a header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize, errs.ErrInvalidMagic, or
//     errs.ErrUnsupportedVersion on validation failure
func (h *ModelHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}
	if [4]byte(data[0:4]) != Magic {
		return fmt.Errorf("%w: got % x", errs.ErrInvalidMagic, data[0:4])
	}
	if data[4] != ModelVersionV1 {
		return fmt.Errorf("%w: version %d", errs.ErrUnsupportedVersion, data[4])
	}

	h.Version = data[4]
	h.Compression = format.CompressionType(data[5])
	h.PayloadSize = binary.LittleEndian.Uint64(data[8:16])
	h.Checksum = binary.LittleEndian.Uint64(data[16:24])

	return nil
}
