// SPDX-License-Identifier: MIT

package indent_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/orbital/indent"
)

// TestWriter_Stack verifies push/pop arithmetic and prefixing.
func TestWriter_Stack(t *testing.T) {
	var buf bytes.Buffer
	iw := indent.NewWriter(&buf)

	assert.Equal(t, "a", iw.Prefix("a"))
	iw.Indent(2)
	iw.Indent(4)
	assert.Equal(t, 6, iw.Depth())
	assert.Equal(t, "      b", iw.Prefix("b"))

	assert.True(t, iw.Dedent())
	assert.Equal(t, "  c", iw.Prefix("c"))
	assert.True(t, iw.Dedent())
	assert.False(t, iw.Dedent(), "empty stack")
	assert.Equal(t, 0, iw.Depth())

	iw.Indent(-3)
	assert.Equal(t, 0, iw.Depth(), "negative widths count as zero")
}

// TestWriter_Lines checks emitted text and byte accounting.
func TestWriter_Lines(t *testing.T) {
	var buf bytes.Buffer
	iw := indent.NewWriter(&buf)

	iw.Line("{")
	iw.Indent(2)
	iw.Line("// n == %d", 1)
	iw.Raw("#raw")
	iw.Dedent()
	iw.Line("}")

	want := "{\n  // n == 1\n#raw\n}\n"
	assert.NoError(t, iw.Err())
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), iw.Written())
}

type failWriter struct{ calls int }

func (f *failWriter) Write(p []byte) (int, error) {
	f.calls++

	return 0, errors.New("disk full")
}

// TestWriter_StickyError ensures writes stop after the first failure.
func TestWriter_StickyError(t *testing.T) {
	fw := &failWriter{}
	iw := indent.NewWriter(fw)
	iw.Line("a")
	iw.Line("b")

	assert.EqualError(t, iw.Err(), "disk full")
	assert.Equal(t, 1, fw.calls)
}
