package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	qr "github.com/unixdj/qrtext"
)

func TestDecodeHex(t *testing.T) {
	b, err := decodeHex(" 10 20 0C|56_61:80\n")
	require.NoError(t, err)
	require.Equal(t, []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80}, b)

	b, err = decodeHex("")
	require.NoError(t, err)
	require.Empty(t, b)

	_, err = decodeHex("102")
	require.Error(t, err)
	_, err = decodeHex("1g")
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	for _, v := range []struct {
		text, mode string
	}{
		{"01234567", "num"},
		{"AC-42", "alnum"},
		{"hello", "byte"},
		{"café", "latin1"},
		{"点茗", "kanji"},
	} {
		b, err := encode(v.text, v.mode, 1)
		require.NoError(t, err, v.mode)
		s, err := qr.Decode(b, 1, nil)
		require.NoError(t, err, v.mode)
		require.Equal(t, v.text, s, v.mode)
	}

	b, err := encode("01234567", "num", 1)
	require.NoError(t, err)
	require.Equal(t, []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80}, b)

	for _, v := range []struct {
		text, mode string
	}{
		{"12a", "num"},
		{"abc", "alnum"},
		{"点", "latin1"},
		{"abc", "kanji"},
		{"abc", "eci"},
	} {
		_, err := encode(v.text, v.mode, 1)
		require.Error(t, err, v.mode)
	}
}

func TestPrintable(t *testing.T) {
	require.True(t, printable("QR 漢字\n\tok"))
	require.True(t, printable(""))
	require.False(t, printable("\x1b[0m"))
	require.False(t, printable("\u0082"))
}
