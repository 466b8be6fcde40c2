// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

// Segment decoders.  ISO/IEC 18004:2006, 6.4.3 to 6.4.7.

import (
	"fmt"
	"strings"

	"github.com/unixdj/qrtext/coding"
	"golang.org/x/text/encoding/ianaindex"
)

// Alphanumeric mode characters, indexed by value.  Numeric mode uses
// the first ten.
const alphanumeric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// Numeric mode packs groups of 3, 2 and 1 digits in 10, 7 and 4 bits.
var numGroup = [4]struct {
	nbit int
	max  uint32 // values must be below max
}{
	{0, 1}, {4, 10}, {7, 100}, {10, 1000},
}

func decodeNumeric(bits *coding.BitSource, b *strings.Builder, count int) error {
	var d [3]byte
	for count > 0 {
		n := min(count, 3)
		g := numGroup[n]
		v, err := bits.ReadBits(g.nbit)
		if err != nil {
			return readError(coding.Numeric, err)
		}
		if v >= g.max {
			return &DecodeError{Msg: fmt.Sprintf(
				"illegal value for %d-digit unit: %d", n, v)}
		}
		for i := n - 1; i >= 0; i-- {
			d[i] = alphanumeric[v%10]
			v /= 10
		}
		b.Write(d[:n])
		count -= n
	}
	return nil
}

func decodeAlphanumeric(bits *coding.BitSource, b *strings.Builder, count int) error {
	for ; count >= 2; count -= 2 {
		v, err := bits.ReadBits(11)
		if err != nil {
			return readError(coding.Alphanumeric, err)
		}
		if v >= 45*45 {
			return &DecodeError{Msg: fmt.Sprintf(
				"illegal value for alphanumeric pair: %d", v)}
		}
		b.WriteByte(alphanumeric[v/45])
		b.WriteByte(alphanumeric[v%45])
	}
	if count == 1 {
		v, err := bits.ReadBits(6)
		if err != nil {
			return readError(coding.Alphanumeric, err)
		}
		if v >= 45 {
			return &DecodeError{Msg: fmt.Sprintf(
				"illegal value for alphanumeric character: %d", v)}
		}
		b.WriteByte(alphanumeric[v])
	}
	return nil
}

// decodeByte decodes a byte segment.  The standard doesn't say which
// character encoding byte segments use.  ISO 8859-1 and Shift JIS are
// both seen without an ECI segment, so unless the encoding is set in
// the options it's guessed.
func (d *Decoder) decodeByte(bits *coding.BitSource, b *strings.Builder, count int) error {
	if count<<3 > bits.Available() {
		return &DecodeError{Msg: fmt.Sprintf("count too large: %d", count)}
	}
	buf := make([]byte, count)
	for i := range buf {
		v, err := bits.ReadBits(8)
		if err != nil {
			return readError(coding.Byte, err)
		}
		buf[i] = byte(v)
	}
	name := d.opt.ByteEncoding
	if name == "" {
		name = GuessEncoding(buf, d.opt.AssumeShiftJIS)
	}
	return appendDecoded(b, buf, name)
}

// decodeKanji decodes a kanji segment.  Each character is 13 bits
// representing a Shift JIS double byte character in the range 0x8140
// to 0x9ffc or 0xe040 to 0xebbf.
func decodeKanji(bits *coding.BitSource, b *strings.Builder, count int) error {
	buf := make([]byte, 0, count*2)
	for ; count > 0; count-- {
		v, err := bits.ReadBits(13)
		if err != nil {
			return readError(coding.Kanji, err)
		}
		c := v/0xc0<<8 | v%0xc0
		if c < 0x1f00 {
			c += 0x8140
		} else {
			c += 0xc140
		}
		buf = append(buf, byte(c>>8), byte(c))
	}
	// Shift JIS is a multibyte encoding, decode in one go.
	return appendDecoded(b, buf, ShiftJIS)
}

// appendDecoded decodes buf using the character encoding with the
// IANA name and appends the result to b.
func appendDecoded(b *strings.Builder, buf []byte, name string) error {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return &DecodeError{Msg: "encoding " + name, Err: err}
	}
	if enc == nil {
		return &DecodeError{Msg: "unsupported encoding " + name}
	}
	s, err := enc.NewDecoder().Bytes(buf)
	if err != nil {
		return &DecodeError{Msg: "can't decode " + name + " string",
			Err: err}
	}
	b.Write(s)
	return nil
}
