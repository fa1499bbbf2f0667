package tailer_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"linetail/internal/tailer"
	"linetail/internal/testsupport"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.log")
	testsupport.WriteFile(t, path, content)
	return path
}

func TestReadLastExamples(t *testing.T) {
	tests := []struct {
		name    string
		content string
		lines   int
		want    string
	}{
		{"last line", "line 1\nline 2\nline 3", 1, "line 3"},
		{"all lines", "line 1\nline 2\nline 3", 3, "line 1\nline 2\nline 3"},
		{"more than present", "line 1\nline 2\nline 3", 50, "line 1\nline 2\nline 3"},
		{"trailing newline kept", "line 1\nline 2\nline 3\n", 2, "line 2\nline 3\n"},
		{"only newlines", "\n\n\n", 2, "\n\n"},
		{"single unterminated line", "solo", 1, "solo"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTemp(t, tc.content)
			got, err := tailer.ReadLast(path, tc.lines)
			if err != nil {
				t.Fatalf("ReadLast: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestReadLastBufferSizeInvariance(t *testing.T) {
	content := ""
	for i := 0; i < 100; i++ {
		content += "some log line with a fair amount of text in it\n"
	}
	path := writeTemp(t, content)

	want, err := tailer.ReadLast(path, 5)
	if err != nil {
		t.Fatalf("ReadLast: %v", err)
	}
	for _, bufferSize := range []int{1, 64, 1024, 16384, len(content) * 2} {
		got, err := tailer.ReadLast(path, 5, tailer.WithBufferSize(bufferSize))
		if err != nil {
			t.Fatalf("ReadLast bufferSize=%d: %v", bufferSize, err)
		}
		if got != want {
			t.Fatalf("bufferSize %d changed the result", bufferSize)
		}
	}
}

func TestReadLastNonPositiveLineCounts(t *testing.T) {
	path := writeTemp(t, "a\nb\nc\n")
	for _, lines := range []int{0, -1, -100} {
		got, err := tailer.ReadLast(path, lines)
		if err != nil {
			t.Fatalf("ReadLast(%d): %v", lines, err)
		}
		if got != "" {
			t.Fatalf("ReadLast(%d) = %q, want empty", lines, got)
		}
	}
}

func TestReadLastEmptyFile(t *testing.T) {
	path := writeTemp(t, "")
	got, err := tailer.ReadLast(path, 10)
	if err != nil {
		t.Fatalf("ReadLast: %v", err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestReadLastMissingFile(t *testing.T) {
	_, err := tailer.ReadLast(filepath.Join(t.TempDir(), "absent.log"), 3)
	if !errors.Is(err, tailer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReadLastDirectory(t *testing.T) {
	_, err := tailer.ReadLast(t.TempDir(), 3)
	if !errors.Is(err, tailer.ErrIsDirectory) {
		t.Fatalf("expected ErrIsDirectory, got %v", err)
	}
}

func TestReadLastEmptyPath(t *testing.T) {
	_, err := tailer.ReadLast("   ", 3)
	if !errors.Is(err, tailer.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReadLastUnknownEncoding(t *testing.T) {
	path := writeTemp(t, "a\nb\n")
	_, err := tailer.ReadLast(path, 1, tailer.WithEncoding("definitely-not-real"))
	if !errors.Is(err, tailer.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReadLastDecodesNamedEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.log")
	// "café\n" in latin-1.
	if err := os.WriteFile(path, []byte{'c', 'a', 'f', 0xE9, '\n'}, 0o644); err != nil {
		t.Fatalf("write latin-1 fixture: %v", err)
	}

	got, err := tailer.ReadLast(path, 1, tailer.WithEncoding("iso-8859-1"))
	if err != nil {
		t.Fatalf("ReadLast: %v", err)
	}
	if got != "café\n" {
		t.Fatalf("got %q, want %q", got, "café\n")
	}
}
