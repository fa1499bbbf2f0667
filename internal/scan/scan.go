package scan

import (
	"errors"
	"fmt"
	"io"
)

// DefaultBufferSize is the chunk size used for backward reads when the
// caller does not supply one.
const DefaultBufferSize = 16 * 1024

// StartOffset returns the byte offset at which the last `lines` logical
// lines of a size-byte source begin. The source is read backward in chunks
// of at most bufferSize bytes, so the cost is proportional to the tail
// region actually scanned, never the full file.
//
// A line feed that terminates the file (the byte at size-1) closes the last
// line rather than starting a new one, so it is not counted as the first
// boundary. When the source holds fewer than `lines` lines the offset is 0:
// the caller gets the whole file, not an error.
//
// Callers are expected to short-circuit size == 0 and lines <= 0 before
// calling; both return 0 here as a degenerate case.
func StartOffset(r io.ReaderAt, size int64, lines int, bufferSize int) (int64, error) {
	if size <= 0 || lines <= 0 {
		return 0, nil
	}
	if bufferSize < 1 {
		bufferSize = DefaultBufferSize
	}

	buf := make([]byte, bufferSize)
	position := size
	found := 0

	for position > 0 {
		readLen := int64(bufferSize)
		if readLen > position {
			readLen = position
		}
		position -= readLen

		chunk := buf[:readLen]
		n, err := r.ReadAt(chunk, position)
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("read %d bytes at offset %d: %w", readLen, position, err)
		}
		if int64(n) < readLen {
			return 0, fmt.Errorf("short read at offset %d: got %d of %d bytes", position, n, readLen)
		}

		for i := readLen - 1; i >= 0; i-- {
			if chunk[i] != '\n' {
				continue
			}
			abs := position + i
			if abs == size-1 && found == 0 {
				// Terminal newline: it ends the final line instead of
				// opening an empty one after it.
				continue
			}
			found++
			if found == lines {
				return abs + 1, nil
			}
		}
	}

	return 0, nil
}
