package png

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pngstash/pngstash/pkg/codec"
)

// ChunkReader provides sequential access to the chunks in a PNG file
type ChunkReader struct {
	file   *os.File
	reader *bufio.Reader
	offset int64
	config ChunkReaderConfig
}

// NewChunkReader opens the file, validates the PNG signature, and leaves
// the reader positioned at the first chunk.
func NewChunkReader(config ChunkReaderConfig) (*ChunkReader, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, err
	}

	reader := bufio.NewReader(file)

	sig := make([]byte, SignatureSize)
	if _, err := io.ReadFull(reader, sig); err != nil {
		file.Close()
		return nil, ErrBadSignature
	}
	if !bytes.Equal(sig, Signature[:]) {
		file.Close()
		return nil, ErrBadSignature
	}

	return &ChunkReader{
		file:   file,
		reader: reader,
		offset: SignatureSize,
		config: config,
	}, nil
}

// ReadNext reads and verifies the next chunk from the current offset.
// It returns io.EOF at a clean chunk boundary; a file that ends inside a
// chunk yields ErrCorruption.
func (r *ChunkReader) ReadNext() (*codec.Chunk, error) {
	// Read the chunk header (8 bytes: length + type)
	header := make([]byte, codec.HeaderSize)
	n, err := io.ReadFull(r.reader, header)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, ErrCorruption
		}
		return nil, err
	}
	r.offset += int64(n)

	length := binary.BigEndian.Uint32(header[0:4])

	// Read payload plus trailing CRC
	body := make([]byte, int(length)+codec.ChecksumSize)
	n, err = io.ReadFull(r.reader, body)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, ErrCorruption
		}
		return nil, err
	}
	r.offset += int64(n)

	// Reassemble the full chunk for decoding; the codec re-checks the
	// bounds and verifies the CRC.
	full := make([]byte, 0, len(header)+len(body))
	full = append(full, header...)
	full = append(full, body...)

	chunk, err := codec.Decode(full)
	if err != nil {
		return nil, err
	}

	return chunk, nil
}

// ReadAll reads every remaining chunk through to the end of the file.
func (r *ChunkReader) ReadAll() ([]*codec.Chunk, error) {
	var chunks []*codec.Chunk
	for {
		chunk, err := r.ReadNext()
		if err == io.EOF {
			return chunks, nil
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, chunk)
	}
}

// Offset returns the current byte offset in the file.
func (r *ChunkReader) Offset() int64 {
	return r.offset
}

// Close closes the underlying file.
func (r *ChunkReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
