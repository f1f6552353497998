package msg

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndentWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &IndentWriter{Indent: "  ", W: &buf}

	io.WriteString(w, "a\nb")
	io.WriteString(w, "c\n")

	assert.Equal(t, "  a\n  bc\n", buf.String())
}

func TestIndentWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := &IndentWriter{Indent: "> ", W: &buf}

	n, err := w.Write(nil)
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, buf.String())
}
