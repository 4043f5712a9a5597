// Package clipboard puts the system clipboard behind a minimal interface
// so the pipeline can be tested without touching the real clipboard.
package clipboard

import "github.com/atotto/clipboard"

// Writer publishes plain text to a clipboard backend.
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts an ordinary function to the Writer interface.
type WriterFunc func(text string) error

// WriteAll calls f(text).
func (f WriterFunc) WriteAll(text string) error {
	return f(text)
}

// System returns a Writer backed by the OS clipboard.
func System() Writer {
	return WriterFunc(clipboard.WriteAll)
}
