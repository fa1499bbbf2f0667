package tailer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/encoding"

	"linetail/internal/textenc"
)

// Line is one unit of output from a followed file. A terminal failure is
// delivered as a final Line with Err set before the channel closes;
// cancellation closes the channel without one.
type Line struct {
	Text string
	Err  error
}

// Follower streams the tail of a file. Consumers range over Lines until it
// closes; production stops when the context passed to Follow is cancelled.
type Follower struct {
	lines chan Line
}

// Lines returns the channel carrying emitted lines.
func (f *Follower) Lines() <-chan Line {
	return f.lines
}

// Follow emits the last maxLines lines of the file at path, then keeps
// polling it for appended content, emitting each newly completed line.
// Truncation and file replacement restart reading from the new beginning of
// the file. Errors opening the file are returned synchronously; everything
// after that arrives through the Lines channel.
func Follow(ctx context.Context, path string, maxLines int, opts ...Option) (*Follower, error) {
	o := buildOptions(opts)

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	enc, err := textenc.Resolve(o.encoding)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, classifyOpen(path, err)
	}
	if _, err := regularFileSize(file, path); err != nil {
		file.Close()
		return nil, err
	}

	w := &watcher{
		path:         path,
		file:         file,
		enc:          enc,
		bufferSize:   o.bufferSize,
		pollInterval: o.pollInterval,
		logger:       o.logger.With("component", "tailer", "session", uuid.NewString()),
		out:          make(chan Line, 64),
	}

	follower := &Follower{lines: w.out}
	go w.run(ctx, maxLines)
	return follower, nil
}

// watcher owns one follow session: the open handle, the read position, and
// the trailing not-yet-terminated fragment carried between polls. Nothing
// here is shared across sessions.
type watcher struct {
	path         string
	file         *os.File
	enc          encoding.Encoding
	bufferSize   int
	pollInterval time.Duration
	logger       *slog.Logger

	out       chan Line
	position  int64
	remainder string
}

func (w *watcher) run(ctx context.Context, maxLines int) {
	defer close(w.out)
	defer w.closeFile()

	w.logger.Debug("follow session started", "path", w.path, "poll_interval", w.pollInterval)

	if err := w.initialRead(ctx, maxLines); err != nil {
		if ctx.Err() == nil {
			w.emitError(ctx, err)
		}
		return
	}

	timer := time.NewTimer(w.pollInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.flushRemainder()
			w.logger.Debug("follow session cancelled", "path", w.path)
			return
		case <-timer.C:
		}

		if err := w.cycle(ctx); err != nil {
			if ctx.Err() != nil {
				w.flushRemainder()
				return
			}
			w.emitError(ctx, err)
			return
		}
		timer.Reset(w.pollInterval)
	}
}

// initialRead emits the last maxLines lines already present, then positions
// the watcher at end of file.
func (w *watcher) initialRead(ctx context.Context, maxLines int) error {
	size, err := regularFileSize(w.file, w.path)
	if err != nil {
		return err
	}

	if maxLines > 0 && size > 0 {
		raw, err := readTail(w.file, size, maxLines, w.bufferSize)
		if err != nil {
			return fmt.Errorf("read tail of %s: %w", w.path, err)
		}
		text, err := textenc.Decode(w.enc, raw)
		if err != nil {
			return err
		}
		for _, segment := range strings.Split(text, "\n") {
			if segment == "" {
				continue
			}
			if err := w.emit(ctx, segment); err != nil {
				return err
			}
		}
	}

	w.position = size
	return nil
}

// cycle runs one watch iteration: stat, detect shrinkage, read at most one
// buffer of appended bytes, and emit the lines completed by them.
func (w *watcher) cycle(ctx context.Context) error {
	info, err := os.Stat(w.path)
	if err != nil {
		return w.reopen(err)
	}

	size := info.Size()
	switch {
	case size < w.position:
		// Shrank below the last known position: the file was truncated or
		// replaced. Reopening restarts line reassembly from the new
		// beginning and picks up a replacement file's handle.
		w.logger.Info("file shrank, restarting from start",
			"path", w.path, "size", size, "position", w.position)
		return w.reopen(nil)
	case size == w.position:
		return nil
	}

	readLen := size - w.position
	if limit := int64(w.bufferSize); readLen > limit {
		readLen = limit
	}
	raw := make([]byte, readLen)
	n, err := w.file.ReadAt(raw, w.position)
	if err != nil && !errors.Is(err, io.EOF) {
		return w.reopen(err)
	}
	if n == 0 {
		// The path has bytes past our position but the retained handle has
		// none: the file was replaced by one at least as large, and we
		// still hold the old inode. Restart on the new file.
		w.logger.Info("file replaced, restarting from start",
			"path", w.path, "size", size, "position", w.position)
		return w.reopen(nil)
	}

	text, err := textenc.Decode(w.enc, raw[:n])
	if err != nil {
		return err
	}

	working := w.remainder + text
	segments := strings.Split(working, "\n")
	w.remainder = segments[len(segments)-1]
	w.position += int64(n)

	for _, segment := range segments[:len(segments)-1] {
		if segment == "" {
			continue
		}
		if err := w.emit(ctx, segment); err != nil {
			return err
		}
	}
	return nil
}

// reopen closes and reopens the path, restarting from offset zero. A nil
// cause means planned recovery (truncation); otherwise this is the single
// retry allowed after a failed stat or read. A failed reopen propagates and
// ends the session.
func (w *watcher) reopen(cause error) error {
	if cause != nil {
		w.logger.Warn("reopening after I/O failure", "path", w.path, "error", cause)
	}
	w.closeFile()

	file, err := os.Open(w.path)
	if err != nil {
		return classifyOpen(w.path, err)
	}
	w.file = file
	w.position = 0
	w.remainder = ""
	return nil
}

func (w *watcher) emit(ctx context.Context, text string) error {
	select {
	case w.out <- Line{Text: text}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *watcher) emitError(ctx context.Context, err error) {
	select {
	case w.out <- Line{Err: err}:
	case <-ctx.Done():
	}
}

// flushRemainder delivers a pending partial line once during shutdown. The
// send must not block: the consumer may already have stopped reading.
func (w *watcher) flushRemainder() {
	if w.remainder == "" {
		return
	}
	select {
	case w.out <- Line{Text: w.remainder}:
	default:
		w.logger.Debug("discarding unread remainder on shutdown", "path", w.path)
	}
	w.remainder = ""
}

func (w *watcher) closeFile() {
	if w.file != nil {
		_ = w.file.Close()
		w.file = nil
	}
}
