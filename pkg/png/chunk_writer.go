package png

import (
	"bufio"
	"os"
	"path/filepath"
	"sync"

	"github.com/pngstash/pngstash/pkg/codec"
)

const defaultWriterBufferSize = 64 * 1024

// ChunkWriter writes a PNG file chunk by chunk
type ChunkWriter struct {
	file   *os.File
	writer *bufio.Writer
	config ChunkWriterConfig
	mutex  sync.Mutex
	offset int64 // Current write offset
}

// NewChunkWriter creates the output file, writes the PNG signature, and
// returns a writer positioned for the first chunk. An existing file at
// the path is truncated.
func NewChunkWriter(config ChunkWriterConfig) (*ChunkWriter, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0750); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, err
	}

	bufferSize := config.BufferSize
	if bufferSize <= 0 {
		bufferSize = defaultWriterBufferSize
	}

	w := &ChunkWriter{
		file:   file,
		writer: bufio.NewWriterSize(file, bufferSize),
		config: config,
	}

	if _, err := w.writer.Write(Signature[:]); err != nil {
		file.Close()
		return nil, err
	}
	w.offset = SignatureSize

	return w, nil
}

// WriteChunk appends one serialized chunk and returns the offset it was
// written at.
func (w *ChunkWriter) WriteChunk(chunk *codec.Chunk) (int64, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	offset := w.offset
	n, err := w.writer.Write(chunk.Bytes())
	w.offset += int64(n)
	if err != nil {
		return 0, err
	}
	return offset, nil
}

// Flush pushes buffered data to the file.
func (w *ChunkWriter) Flush() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.writer.Flush()
}

// Sync flushes buffered data and fsyncs the file.
func (w *ChunkWriter) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if err := w.writer.Flush(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Offset returns the current write offset.
func (w *ChunkWriter) Offset() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}

// Close flushes remaining data and closes the file.
func (w *ChunkWriter) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.file == nil {
		return nil
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		w.file = nil
		return err
	}
	err := w.file.Close()
	w.file = nil
	return err
}
