package iocli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeStdio создает Stdio, читающий из pipe с заданным вводом
func pipeStdio(t *testing.T, input string) (*Stdio, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	out := &bytes.Buffer{}
	return NewStdioWith(r, out), out
}

func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnPrintfWrite(t *testing.T) {
	stdio, out := pipeStdio(t, "")

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	n, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

func TestReadInput(t *testing.T) {
	stdio, out := pipeStdio(t, "first line\r\nsecond  \nlast")

	line, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "first line", line)
	assert.Equal(t, "Prompt: ", out.String())

	// пробелы внутри строки сохраняются: это текст документа
	line, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second  ", line)

	line, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = stdio.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	stdio, _ := pipeStdio(t, "secret\n")

	pw, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
}
