// Package scan locates line boundaries near the end of a file without
// reading it from the front.
//
// The single entry point, StartOffset, walks a random-access source backward
// in fixed-size chunks and stops as soon as it has seen enough line feeds to
// cover the requested line count. It is the shared core behind both the
// one-shot and the following read paths in internal/tailer.
package scan
