package png

// SignatureSize is the length of the fixed PNG file signature.
const SignatureSize = 8

// Signature is the 8-byte sequence that opens every PNG file.
var Signature = [SignatureSize]byte{137, 80, 78, 71, 13, 10, 26, 10}

// ChunkReaderConfig holds configuration for the chunk reader
type ChunkReaderConfig struct {
	FilePath string // Path to the PNG file
}

// ChunkWriterConfig holds configuration for the chunk writer
type ChunkWriterConfig struct {
	FilePath   string // Path to the output PNG file
	BufferSize int    // Write buffer size
}

// Errors
var (
	ErrBadSignature  = &PngError{"invalid png signature"}
	ErrChunkNotFound = &PngError{"chunk not found"}
	ErrCorruption    = &PngError{"png data corruption detected"}
)

// PngError represents a PNG container error
type PngError struct {
	Message string
}

func (e *PngError) Error() string {
	return e.Message
}
