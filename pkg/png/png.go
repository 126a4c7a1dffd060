// Package png assembles and disassembles whole PNG files from their
// chunks. It layers on pkg/codec: the codec owns one chunk's byte layout,
// this package owns the signature and the chunk sequence. It does not
// decode pixel data.
package png

import (
	"bytes"
	"fmt"

	"github.com/pngstash/pngstash/pkg/codec"
)

// Png is an ordered list of chunks behind the fixed file signature.
type Png struct {
	chunks []*codec.Chunk
}

// New returns an empty Png with no chunks.
func New() *Png {
	return &Png{}
}

// FromChunks builds a Png from an ordered chunk list.
func FromChunks(chunks []*codec.Chunk) *Png {
	return &Png{chunks: chunks}
}

// FromBytes parses a whole PNG file buffer: signature check, then
// sequential chunk decoding until the buffer is exhausted. Codec errors
// pass through unchanged.
func FromBytes(buf []byte) (*Png, error) {
	if len(buf) < SignatureSize || !bytes.Equal(buf[:SignatureSize], Signature[:]) {
		return nil, ErrBadSignature
	}

	p := &Png{}
	rest := buf[SignatureSize:]
	for len(rest) > 0 {
		chunk, err := codec.Decode(rest)
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", len(p.chunks), err)
		}
		p.chunks = append(p.chunks, chunk)
		rest = rest[chunk.Size():]
	}
	return p, nil
}

// AppendChunk adds a chunk at the end of the list. When the current last
// chunk is the IEND trailer the new chunk is inserted just before it, so
// an appended chunk never lands outside the container.
func (p *Png) AppendChunk(chunk *codec.Chunk) {
	n := len(p.chunks)
	if n > 0 && p.chunks[n-1].ChunkType().String() == "IEND" {
		p.chunks = append(p.chunks[:n-1], chunk, p.chunks[n-1])
		return
	}
	p.chunks = append(p.chunks, chunk)
}

// RemoveFirstChunk removes and returns the first chunk whose type matches
// typeName. It returns ErrChunkNotFound when no chunk matches.
func (p *Png) RemoveFirstChunk(typeName string) (*codec.Chunk, error) {
	for i, chunk := range p.chunks {
		if chunk.ChunkType().String() == typeName {
			p.chunks = append(p.chunks[:i], p.chunks[i+1:]...)
			return chunk, nil
		}
	}
	return nil, ErrChunkNotFound
}

// ChunkByType returns the first chunk whose type matches typeName, or nil.
func (p *Png) ChunkByType(typeName string) *codec.Chunk {
	for _, chunk := range p.chunks {
		if chunk.ChunkType().String() == typeName {
			return chunk
		}
	}
	return nil
}

// Chunks returns the ordered chunk list. Callers must treat it as read-only.
func (p *Png) Chunks() []*codec.Chunk {
	return p.chunks
}

// ChunkTypes returns the type names of all chunks in order.
func (p *Png) ChunkTypes() []string {
	names := make([]string, 0, len(p.chunks))
	for _, chunk := range p.chunks {
		names = append(names, chunk.ChunkType().String())
	}
	return names
}

// Bytes serializes the file: signature followed by every chunk in order.
func (p *Png) Bytes() []byte {
	size := SignatureSize
	for _, chunk := range p.chunks {
		size += chunk.Size()
	}

	buf := make([]byte, 0, size)
	buf = append(buf, Signature[:]...)
	for _, chunk := range p.chunks {
		buf = append(buf, chunk.Bytes()...)
	}
	return buf
}
