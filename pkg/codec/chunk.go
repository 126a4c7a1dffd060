package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"math"
	"strings"
	"unicode/utf8"
)

const (
	// HeaderSize is the length field plus the type field.
	HeaderSize = 8
	// ChecksumSize is the trailing CRC field.
	ChecksumSize = 4
	// MinChunkSize is the smallest possible serialized chunk: a zero-length
	// payload still carries the 8-byte header and the 4-byte CRC.
	MinChunkSize = HeaderSize + ChecksumSize
	// MaxPayloadSize is the largest payload the 32-bit length field can declare.
	MaxPayloadSize = math.MaxUint32
)

// Chunk is one self-contained record of the container format:
// [length][type][payload][crc]. A Chunk is either fully valid or was never
// constructed; both constructors enforce length == len(data) and a CRC that
// matches the type and payload, and there is no mutation afterwards.
type Chunk struct {
	length    uint32
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk builds a chunk from a validated type and an owned payload
// buffer, computing the length and CRC. It returns ErrPayloadTooLarge when
// the payload cannot be declared in the 32-bit length field; within that
// bound it cannot fail.
func NewChunk(chunkType ChunkType, data []byte) (*Chunk, error) {
	if uint64(len(data)) > MaxPayloadSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(data))
	}
	return &Chunk{
		length:    uint32(len(data)),
		chunkType: chunkType,
		data:      data,
		crc:       checksum(chunkType, data),
	}, nil
}

// Decode parses one serialized chunk from buf and verifies its CRC.
//
// Failure order: ErrTooShort when buf is under the 12-byte minimum
// envelope, ErrInvalidChunkType when the type bytes fail validation,
// ErrTruncated when the declared length runs past the end of buf, and
// ErrChecksumMismatch when the stored CRC disagrees with the one
// recomputed over type and payload. The declared length is bounds-checked
// before any payload access; Decode never reads past buf.
func Decode(buf []byte) (*Chunk, error) {
	if len(buf) < MinChunkSize {
		return nil, fmt.Errorf("%w: got %d bytes, need at least %d", ErrTooShort, len(buf), MinChunkSize)
	}

	length := binary.BigEndian.Uint32(buf[0:4])

	var typeBytes [4]byte
	copy(typeBytes[:], buf[4:8])
	chunkType, err := ChunkTypeFromBytes(typeBytes)
	if err != nil {
		return nil, err
	}

	total := uint64(HeaderSize) + uint64(length) + uint64(ChecksumSize)
	if uint64(len(buf)) < total {
		return nil, fmt.Errorf("%w: declared length %d needs %d bytes, buffer has %d",
			ErrTruncated, length, total, len(buf))
	}

	end := uint64(HeaderSize) + uint64(length)
	data := make([]byte, length)
	copy(data, buf[HeaderSize:end])

	stored := binary.BigEndian.Uint32(buf[end : end+ChecksumSize])
	if computed := checksum(chunkType, data); computed != stored {
		return nil, fmt.Errorf("%w: stored %d, computed %d", ErrChecksumMismatch, stored, computed)
	}

	return &Chunk{
		length:    length,
		chunkType: chunkType,
		data:      data,
		crc:       stored,
	}, nil
}

// Length returns the payload byte count.
func (c *Chunk) Length() uint32 {
	return c.length
}

// ChunkType returns the chunk's type tag.
func (c *Chunk) ChunkType() ChunkType {
	return c.chunkType
}

// Data returns the payload. Callers must treat it as read-only.
func (c *Chunk) Data() []byte {
	return c.data
}

// CRC returns the chunk's checksum.
func (c *Chunk) CRC() uint32 {
	return c.crc
}

// DataAsString returns the payload as text. It returns ErrNotUTF8 when the
// payload is not valid UTF-8; the payload is never assumed to be text
// otherwise.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: %d-byte payload", ErrNotUTF8, len(c.data))
	}
	return string(c.data), nil
}

// Size returns the total serialized size of the chunk in bytes.
func (c *Chunk) Size() int {
	return MinChunkSize + len(c.data)
}

// Bytes serializes the chunk to its exact wire layout: big-endian length,
// 4 raw type bytes, the payload verbatim, big-endian CRC. Decode(Bytes())
// reproduces the chunk exactly.
func (c *Chunk) Bytes() []byte {
	buf := make([]byte, c.Size())
	binary.BigEndian.PutUint32(buf[0:], c.length)
	copy(buf[4:], c.chunkType.bytes[:])
	copy(buf[HeaderSize:], c.data)
	binary.BigEndian.PutUint32(buf[HeaderSize+len(c.data):], c.crc)
	return buf
}

// String renders a multi-line diagnostic summary. Not used for wire encoding.
func (c *Chunk) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Chunk {\n")
	fmt.Fprintf(&b, "  Type: %s\n", c.chunkType)
	fmt.Fprintf(&b, "  Length: %d\n", c.length)
	fmt.Fprintf(&b, "  Data: %d bytes\n", len(c.data))
	fmt.Fprintf(&b, "  Crc: %d\n", c.crc)
	fmt.Fprintf(&b, "}")
	return b.String()
}

// checksum computes the CRC-32 (ISO-HDLC parameterization, the one PNG
// uses) over the 4 type bytes followed by the payload. Encode and decode
// share this single definition.
func checksum(chunkType ChunkType, data []byte) uint32 {
	crc := crc32.NewIEEE()
	crc.Write(chunkType.bytes[:])
	crc.Write(data)
	return crc.Sum32()
}
