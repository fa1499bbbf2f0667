// Package tailer reads the trailing lines of a file and can keep following
// it for appended content.
//
// ReadLast is the one-shot path: a backward boundary scan (internal/scan)
// finds where the last N lines begin, and the byte range from there to end
// of file is read in a single allocation and decoded. Follow performs the
// same initial read, then polls the file for growth, emitting each newly
// completed line over a channel. Truncation and file replacement reset the
// session to the start of the file; a failed stat or read is retried once
// per cycle by closing and reopening the path.
//
// Every call owns its file handle and position state outright, so
// concurrent calls against the same path never coordinate. Offsets are not
// persisted anywhere; a new Follow session starts fresh.
package tailer
