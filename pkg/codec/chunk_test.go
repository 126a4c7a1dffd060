package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

const secretMessage = "This is where your secret message will be!"

func testingChunk(t *testing.T) *Chunk {
	t.Helper()
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatalf("ChunkTypeFromString failed: %v", err)
	}
	chunk, err := NewChunk(ct, []byte(secretMessage))
	if err != nil {
		t.Fatalf("NewChunk failed: %v", err)
	}
	return chunk
}

func TestNewChunk(t *testing.T) {
	chunk := testingChunk(t)

	if chunk.Length() != 42 {
		t.Errorf("Length mismatch: got %d, want 42", chunk.Length())
	}
	if chunk.CRC() != 2882656334 {
		t.Errorf("CRC mismatch: got %d, want 2882656334", chunk.CRC())
	}
	if chunk.ChunkType().String() != "RuSt" {
		t.Errorf("ChunkType mismatch: got %q, want %q", chunk.ChunkType(), "RuSt")
	}
}

func TestChunkEncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		typeName string
		data     []byte
	}{
		{
			name:     "secret message",
			typeName: "RuSt",
			data:     []byte(secretMessage),
		},
		{
			name:     "empty payload",
			typeName: "TeSt",
			data:     []byte{},
		},
		{
			name:     "binary payload",
			typeName: "FrOg",
			data:     []byte{0x00, 0x01, 0x02, 0xFF, 0xFE, 0xFD},
		},
		{
			name:     "large payload",
			typeName: "bIgG",
			data:     bytes.Repeat([]byte("x"), 10240),
		},
		{
			name:     "unicode payload",
			typeName: "tExT",
			data:     []byte("🎯 unicode value with émojis"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := ChunkTypeFromString(tc.typeName)
			if err != nil {
				t.Fatalf("ChunkTypeFromString failed: %v", err)
			}

			chunk, err := NewChunk(ct, tc.data)
			if err != nil {
				t.Fatalf("NewChunk failed: %v", err)
			}

			decoded, err := Decode(chunk.Bytes())
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if decoded.Length() != uint32(len(tc.data)) {
				t.Errorf("Length mismatch: got %d, want %d", decoded.Length(), len(tc.data))
			}
			if decoded.ChunkType() != chunk.ChunkType() {
				t.Errorf("ChunkType mismatch: got %v, want %v", decoded.ChunkType(), chunk.ChunkType())
			}
			if !bytes.Equal(decoded.Data(), tc.data) {
				t.Errorf("Data mismatch: got %v, want %v", decoded.Data(), tc.data)
			}
			if decoded.CRC() != chunk.CRC() {
				t.Errorf("CRC mismatch: got %d, want %d", decoded.CRC(), chunk.CRC())
			}
		})
	}
}

func TestChunkChecksumDeterminism(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatalf("ChunkTypeFromString failed: %v", err)
	}

	first, err := NewChunk(ct, []byte(secretMessage))
	if err != nil {
		t.Fatalf("NewChunk failed: %v", err)
	}
	second, err := NewChunk(ct, []byte(secretMessage))
	if err != nil {
		t.Fatalf("NewChunk failed: %v", err)
	}

	if first.CRC() != second.CRC() {
		t.Errorf("checksum not deterministic: %d != %d", first.CRC(), second.CRC())
	}
}

func TestDecodeWireLayout(t *testing.T) {
	chunk := testingChunk(t)
	wire := chunk.Bytes()

	if len(wire) != MinChunkSize+42 {
		t.Fatalf("wire length mismatch: got %d, want %d", len(wire), MinChunkSize+42)
	}
	if got := binary.BigEndian.Uint32(wire[0:4]); got != 42 {
		t.Errorf("length field mismatch: got %d, want 42", got)
	}
	if got := string(wire[4:8]); got != "RuSt" {
		t.Errorf("type field mismatch: got %q, want %q", got, "RuSt")
	}
	if got := string(wire[8 : 8+42]); got != secretMessage {
		t.Errorf("payload mismatch: got %q", got)
	}
	if got := binary.BigEndian.Uint32(wire[8+42:]); got != 2882656334 {
		t.Errorf("crc field mismatch: got %d, want 2882656334", got)
	}
}

func TestDecodeTooShort(t *testing.T) {
	for size := 0; size < MinChunkSize; size++ {
		buf := make([]byte, size)
		_, err := Decode(buf)
		if !errors.Is(err, ErrTooShort) {
			t.Errorf("size %d: expected ErrTooShort, got %v", size, err)
		}
	}
}

func TestDecodeInvalidChunkType(t *testing.T) {
	chunk := testingChunk(t)
	wire := chunk.Bytes()
	wire[5] = '1' // corrupt a type byte with a digit

	_, err := Decode(wire)
	if !errors.Is(err, ErrInvalidChunkType) {
		t.Errorf("expected ErrInvalidChunkType, got %v", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	chunk := testingChunk(t)
	wire := chunk.Bytes()

	// Drop the last byte: the declared length now requires reading past
	// the end of the buffer.
	_, err := Decode(wire[:len(wire)-1])
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated, got %v", err)
	}

	// A declared length near u32 max must fail the bounds check, not
	// overflow or read out of bounds.
	huge := make([]byte, MinChunkSize)
	binary.BigEndian.PutUint32(huge[0:], 0xFFFFFFFF)
	copy(huge[4:8], "RuSt")
	_, err = Decode(huge)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("expected ErrTruncated for huge declared length, got %v", err)
	}
}

func TestDecodeChecksumMismatch(t *testing.T) {
	chunk := testingChunk(t)
	wire := chunk.Bytes()

	// Flip one bit in every payload and CRC byte position in turn; each
	// corruption must be caught.
	for pos := HeaderSize; pos < len(wire); pos++ {
		corrupted := make([]byte, len(wire))
		copy(corrupted, wire)
		corrupted[pos] ^= 0x01

		_, err := Decode(corrupted)
		if !errors.Is(err, ErrChecksumMismatch) {
			t.Errorf("corruption at %d: expected ErrChecksumMismatch, got %v", pos, err)
		}
	}
}

func TestChunkDataAsString(t *testing.T) {
	chunk := testingChunk(t)

	s, err := chunk.DataAsString()
	if err != nil {
		t.Fatalf("DataAsString failed: %v", err)
	}
	if s != secretMessage {
		t.Errorf("DataAsString mismatch: got %q, want %q", s, secretMessage)
	}
}

func TestChunkDataAsStringNotUTF8(t *testing.T) {
	ct, err := ChunkTypeFromString("RuSt")
	if err != nil {
		t.Fatalf("ChunkTypeFromString failed: %v", err)
	}

	// A lone continuation byte is never valid UTF-8.
	chunk, err := NewChunk(ct, []byte{0x80})
	if err != nil {
		t.Fatalf("NewChunk failed: %v", err)
	}

	_, err = chunk.DataAsString()
	if !errors.Is(err, ErrNotUTF8) {
		t.Errorf("expected ErrNotUTF8, got %v", err)
	}
}

func TestChunkString(t *testing.T) {
	chunk := testingChunk(t)
	s := chunk.String()

	for _, want := range []string{"RuSt", "42", "2882656334"} {
		if !bytes.Contains([]byte(s), []byte(want)) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
