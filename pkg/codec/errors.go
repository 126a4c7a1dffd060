package codec

import "errors"

// Sentinel errors returned by chunk and chunk-type constructors. Callers
// match them with errors.Is; the wrapped messages carry the offending
// bytes or the expected/actual values.
var (
	// ErrInvalidChunkType indicates a chunk type whose bytes are not all
	// ASCII alphabetic.
	ErrInvalidChunkType = errors.New("codec: invalid chunk type")

	// ErrWrongLength indicates a chunk type string that is not exactly 4 bytes.
	ErrWrongLength = errors.New("codec: chunk type must be exactly 4 bytes")

	// ErrPayloadTooLarge indicates a payload exceeding the 32-bit length field.
	ErrPayloadTooLarge = errors.New("codec: payload exceeds 32-bit length field")

	// ErrTooShort indicates a buffer smaller than the 12-byte minimum envelope.
	ErrTooShort = errors.New("codec: buffer shorter than minimum chunk envelope")

	// ErrTruncated indicates a buffer that ends before the declared payload
	// and trailing checksum.
	ErrTruncated = errors.New("codec: buffer truncated before end of chunk")

	// ErrChecksumMismatch indicates a stored CRC that disagrees with the
	// CRC recomputed over the chunk type and payload.
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")

	// ErrNotUTF8 indicates a payload-as-text request on a payload that is
	// not valid UTF-8.
	ErrNotUTF8 = errors.New("codec: payload is not valid UTF-8")
)
