// Package codec implements the PNG chunk wire format.
//
// A chunk is the atomic record of the PNG container:
//
//	[Length(4)][Type(4)][Data(Length)][CRC(4)]
//
// Fields:
//   - Length: 32-bit unsigned payload length in bytes (big-endian)
//   - Type: 4 raw bytes, each ASCII alphabetic; the case of each byte
//     encodes the critical/public/reserved/copy-safety properties
//   - Data: variable-length payload, opaque to this package
//   - CRC: 32-bit CRC checksum over Type and Data (big-endian)
//
// The minimum serialized chunk is 12 bytes (empty payload).
//
// # CRC Calculation
//
// The checksum is CRC-32 with the ISO-HDLC parameterization (polynomial
// 0xEDB88320, hash/crc32's IEEE table) computed over the 4 type bytes
// followed by the payload. The length field is not covered. Encode and
// decode use the same definition, so any single corrupted byte in the
// type, payload, or CRC field is detected during decoding.
//
// # Usage
//
//	ct, err := codec.ChunkTypeFromString("ruSt")
//	if err != nil {
//	    return err
//	}
//
//	chunk, err := codec.NewChunk(ct, []byte("hidden message"))
//	if err != nil {
//	    return err
//	}
//
//	wire := chunk.Bytes()
//
//	decoded, err := codec.Decode(wire)
//	if err != nil {
//	    return err // too short, truncated, bad type, or checksum mismatch
//	}
//
// # Error Handling
//
// All failures are typed sentinel errors (ErrTooShort, ErrTruncated,
// ErrInvalidChunkType, ErrChecksumMismatch, ErrPayloadTooLarge,
// ErrWrongLength, ErrNotUTF8) wrapped with the offending values; match
// them with errors.Is. Decoding is pure validation — a failing input
// fails the same way every time, and no failure is fatal to the caller.
//
// # Thread Safety
//
// Chunk and ChunkType values are immutable after construction and safe to
// share between goroutines. The package holds no mutable state; the CRC
// table is the read-only package-level IEEE table.
package codec
