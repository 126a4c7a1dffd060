// Package stash implements the file-level operations of the tool: hiding
// a text message in a PNG file as an extra chunk, extracting it, removing
// it, and listing a file's chunks. It orchestrates pkg/png and pkg/codec;
// all validation failures surface their typed errors unchanged.
package stash

import (
	"fmt"

	"github.com/pngstash/pngstash/pkg/codec"
	"github.com/pngstash/pngstash/pkg/png"
)

// Encode hides message in the PNG at filePath under a chunk with the
// given type tag and writes the result to outPath. An empty outPath
// rewrites the file in place. The chunk is placed before the IEND
// trailer when one is present.
func Encode(filePath, typeName, message, outPath string) error {
	chunkType, err := codec.ChunkTypeFromString(typeName)
	if err != nil {
		return err
	}

	chunk, err := codec.NewChunk(chunkType, []byte(message))
	if err != nil {
		return err
	}

	p, err := readFile(filePath)
	if err != nil {
		return err
	}
	p.AppendChunk(chunk)

	if outPath == "" {
		outPath = filePath
	}
	return writeFile(outPath, p)
}

// Decode extracts the hidden message stored under the given type tag.
// It returns png.ErrChunkNotFound when the file carries no such chunk and
// codec.ErrNotUTF8 when the payload is not text.
func Decode(filePath, typeName string) (string, error) {
	p, err := readFile(filePath)
	if err != nil {
		return "", err
	}

	chunk := p.ChunkByType(typeName)
	if chunk == nil {
		return "", png.ErrChunkNotFound
	}
	return chunk.DataAsString()
}

// Remove strips the first chunk with the given type tag and rewrites the
// file in place.
func Remove(filePath, typeName string) error {
	p, err := readFile(filePath)
	if err != nil {
		return err
	}

	if _, err := p.RemoveFirstChunk(typeName); err != nil {
		return err
	}
	return writeFile(filePath, p)
}

// List returns the type names of every chunk in the file, in order.
func List(filePath string) ([]string, error) {
	p, err := readFile(filePath)
	if err != nil {
		return nil, err
	}
	return p.ChunkTypes(), nil
}

func readFile(filePath string) (*png.Png, error) {
	reader, err := png.NewChunkReader(png.ChunkReaderConfig{FilePath: filePath})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	chunks, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}
	return png.FromChunks(chunks), nil
}

func writeFile(filePath string, p *png.Png) error {
	writer, err := png.NewChunkWriter(png.ChunkWriterConfig{FilePath: filePath})
	if err != nil {
		return err
	}

	for _, chunk := range p.Chunks() {
		if _, err := writer.WriteChunk(chunk); err != nil {
			writer.Close()
			return fmt.Errorf("writing %s: %w", filePath, err)
		}
	}
	return writer.Close()
}
