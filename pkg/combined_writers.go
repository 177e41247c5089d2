package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter fans every write out to all of its writers. A failing
// writer does not stop the others; the errors are combined.
type CombinedWriter struct {
	writers []io.Writer
}

// NewCombinedWriter skips nil writers, so an optional sink can be passed as is.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write reports the bytes written by the first writer that accepted p,
// which keeps it usable as a log output where n must match len(p).
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	n := -1
	var err error
	for _, w := range cw.writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		if n < 0 {
			n = written
		}
	}
	if n < 0 {
		n = 0
	}
	return n, err
}
