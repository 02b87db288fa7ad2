package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStreams(strings.NewReader("  user input \nsecond\n"), &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// Буфер сохраняется между вызовами
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)
}

func TestReadInput_LastLineWithoutNewline(t *testing.T) {
	stdio := NewStreams(strings.NewReader("last"), &bytes.Buffer{})

	result, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "last", result)

	_, err = stdio.ReadInput("")
	assert.Error(t, err)
}

func TestReadPassword_NotTerminal(t *testing.T) {
	stdio := NewStreams(strings.NewReader("secret1\n"), &bytes.Buffer{})

	pw, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret1", pw)
}
