package tailer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"linetail/internal/scan"
	"linetail/internal/textenc"
)

// ReadLast returns the last maxLines newline-delimited lines of the file at
// path as one string. A trailing newline in the selected byte range is
// preserved verbatim. maxLines <= 0 and empty files yield an empty string
// without error.
func ReadLast(path string, maxLines int, opts ...Option) (string, error) {
	o := buildOptions(opts)

	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	enc, err := textenc.Resolve(o.encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	if maxLines <= 0 {
		return "", nil
	}

	file, err := os.Open(path)
	if err != nil {
		return "", classifyOpen(path, err)
	}
	defer file.Close()

	size, err := regularFileSize(file, path)
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}

	raw, err := readTail(file, size, maxLines, o.bufferSize)
	if err != nil {
		return "", fmt.Errorf("read tail of %s: %w", path, err)
	}
	return textenc.Decode(enc, raw)
}

// readTail scans backward for the start of the last maxLines lines and
// reads the byte range [startOffset, size) in a single exact allocation.
func readTail(file *os.File, size int64, maxLines, bufferSize int) ([]byte, error) {
	start, err := scan.StartOffset(file, size, maxLines, bufferSize)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, size-start)
	if _, err := io.ReadFull(io.NewSectionReader(file, start, size-start), raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func regularFileSize(file *os.File, path string) (int64, error) {
	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	return info.Size(), nil
}
