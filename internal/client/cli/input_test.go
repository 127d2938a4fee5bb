package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

// withTerminal swaps the terminal seams for the duration of a test.
func withTerminal(t *testing.T, terminal bool, read func(int) ([]byte, error)) {
	t.Helper()

	oldIs, oldRead := isTerminal, readPassword
	isTerminal = func(int) bool { return terminal }
	if read != nil {
		readPassword = read
	}
	t.Cleanup(func() {
		isTerminal, readPassword = oldIs, oldRead
	})
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \r\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "  hello world ", got)
	assert.Equal(t, "Name? ", out.String())
}

func TestGetSimpleText_EOFAfterInput(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_PipedInputReadsLine(t *testing.T) {
	withTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("readPassword must not be called without a terminal")
		return nil, nil
	})

	var out bytes.Buffer
	pw, err := GetPassword(rdr(" Secret#1 \n"), "Password:", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte(" Secret#1 "), pw)
	assert.Equal(t, "Password: ", out.String())
}

func TestGetPassword_TerminalUsesReadPassword(t *testing.T) {
	withTerminal(t, true, func(int) ([]byte, error) {
		return []byte("Hidden#99"), nil
	})

	var out bytes.Buffer
	pw, err := GetPassword(rdr("not used\n"), "Password:", &out)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hidden#99"), pw)
	assert.Equal(t, "Password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	withTerminal(t, true, func(int) ([]byte, error) {
		return nil, errors.New("boom")
	})

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password:", &out)
	assert.EqualError(t, err, "boom")
}

func TestGetPassword_EOF(t *testing.T) {
	withTerminal(t, false, nil)

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), "Password:", &out)
	assert.ErrorIs(t, err, io.EOF)
}
