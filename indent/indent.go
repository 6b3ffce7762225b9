// SPDX-License-Identifier: MIT

// Package indent tracks nested indentation for line-oriented code
// generation. Widths are pushed and popped as a stack; each emitted line
// is prefixed with the sum of the pushed widths as spaces.
package indent

import (
	"fmt"
	"io"
	"strings"
)

// Writer prefixes lines written to an underlying io.Writer.
// The first write error is kept and later writes become no-ops.
type Writer struct {
	w      io.Writer
	widths []int
	depth  int
	n      int64
	err    error
}

// NewWriter returns a Writer with an empty indentation stack.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Indent pushes a width of n spaces. Negative widths are treated as zero.
func (iw *Writer) Indent(n int) {
	if n < 0 {
		n = 0
	}
	iw.widths = append(iw.widths, n)
	iw.depth += n
}

// Dedent pops the most recently pushed width. It reports false when the
// stack was already empty.
func (iw *Writer) Dedent() bool {
	if len(iw.widths) == 0 {
		return false
	}
	last := iw.widths[len(iw.widths)-1]
	iw.widths = iw.widths[:len(iw.widths)-1]
	iw.depth -= last

	return true
}

// Depth returns the current total indentation in spaces.
func (iw *Writer) Depth() int { return iw.depth }

// Prefix returns s preceded by the current indentation.
func (iw *Writer) Prefix(s string) string {
	return strings.Repeat(" ", iw.depth) + s
}

// Line writes one indented line built from format and args.
func (iw *Writer) Line(format string, args ...any) {
	iw.write(iw.Prefix(fmt.Sprintf(format, args...)) + "\n")
}

// Raw writes s followed by a newline without indentation.
func (iw *Writer) Raw(s string) {
	iw.write(s + "\n")
}

// Err returns the first write error, if any.
func (iw *Writer) Err() error { return iw.err }

// Written returns the number of bytes written so far.
func (iw *Writer) Written() int64 { return iw.n }

func (iw *Writer) write(s string) {
	if iw.err != nil {
		return
	}
	n, err := io.WriteString(iw.w, s)
	iw.n += int64(n)
	iw.err = err
}
