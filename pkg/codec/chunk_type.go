package codec

import "fmt"

// ChunkType is the 4-byte tag classifying a chunk's role. The case of each
// byte encodes one property per the ASCII bit-5 convention: a cleared 0x20
// bit (uppercase) on bytes 0-2 means critical, public, and reserved-bit
// valid respectively; a set bit on byte 3 means safe to copy.
type ChunkType struct {
	bytes [4]byte
}

// ChunkTypeFromBytes builds a ChunkType from 4 raw bytes. It returns
// ErrInvalidChunkType unless every byte is ASCII alphabetic; an invalid
// type is never constructed.
func ChunkTypeFromBytes(b [4]byte) (ChunkType, error) {
	for _, c := range b {
		if !isASCIIAlphabetic(c) {
			return ChunkType{}, fmt.Errorf("%w: bytes %v", ErrInvalidChunkType, b)
		}
	}
	return ChunkType{bytes: b}, nil
}

// ChunkTypeFromString builds a ChunkType from its 4-character text form.
// It returns ErrWrongLength when s is not exactly 4 bytes long; validation
// of the bytes themselves is delegated to ChunkTypeFromBytes.
func ChunkTypeFromString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: got %d bytes in %q", ErrWrongLength, len(s), s)
	}
	var b [4]byte
	copy(b[:], s)
	return ChunkTypeFromBytes(b)
}

// Bytes returns the raw 4-byte tag.
func (t ChunkType) Bytes() [4]byte {
	return t.bytes
}

// IsCritical reports whether byte 0 is uppercase: the chunk must be
// processed by any reader.
func (t ChunkType) IsCritical() bool {
	return t.bytes[0]&0x20 == 0
}

// IsPublic reports whether byte 1 is uppercase: the type belongs to the
// standard registry.
func (t ChunkType) IsPublic() bool {
	return t.bytes[1]&0x20 == 0
}

// IsPrivate is the complement of IsPublic.
func (t ChunkType) IsPrivate() bool {
	return t.bytes[1]&0x20 != 0
}

// IsReservedBitValid reports whether byte 2 is uppercase. A lowercase
// third byte is reserved for future use and currently non-conforming.
func (t ChunkType) IsReservedBitValid() bool {
	return t.bytes[2]&0x20 == 0
}

// IsSafeToCopy reports whether byte 3 is lowercase: editors may copy the
// chunk across edits they don't understand.
func (t ChunkType) IsSafeToCopy() bool {
	return t.bytes[3]&0x20 != 0
}

// IsAncillary is the complement of IsCritical.
func (t ChunkType) IsAncillary() bool {
	return t.bytes[0]&0x20 != 0
}

// IsValid reports whether the type conforms as a whole: the reserved bit
// must be valid and byte 3 must be ASCII alphabetic. This is the contract
// used for the single pass/fail signal; it deliberately does not require
// any particular mix of cases across the other bytes.
func (t ChunkType) IsValid() bool {
	return t.IsReservedBitValid() && isASCIIAlphabetic(t.bytes[3])
}

// String renders the tag as 4 ASCII characters. Best-effort, for
// diagnostics only; the wire encoding always uses the raw bytes.
func (t ChunkType) String() string {
	return string(t.bytes[:])
}

func isASCIIAlphabetic(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
