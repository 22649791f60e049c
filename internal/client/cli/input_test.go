package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(readerFromLines("  hola  "), "Texto", &out)
	require.NoError(t, err)
	assert.Equal(t, "hola", got)
	assert.Contains(t, out.String(), "Texto\n> ")
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	reader := readerFromLines() // empty input
	_, err := GetSimpleText(reader, "Texto", &out)
	assert.Error(t, err)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(readerFromLines("línea 1", "línea 2", ""), "Descripción", &out)
	require.NoError(t, err)
	assert.Equal(t, "línea 1\nlínea 2", got)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return []byte("secreta"), nil }

	var out bytes.Buffer
	pw, err := GetPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secreta"), pw)
	assert.Contains(t, out.String(), "Contraseña: ")
}

func TestGetPassword_Error(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) { return nil, errors.New("no tty") }

	var out bytes.Buffer
	_, err := GetPassword(&out)
	assert.Error(t, err)
}
