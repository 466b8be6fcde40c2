// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr decodes the data bit stream of QR codes into text.

The input is the sequence of data codewords after error correction,
as described in ISO/IEC 18004:2006, 6.4.3 to 6.4.7.  Numeric,
alphanumeric, byte and kanji segments are decoded.  Any other segment
mode is an error.
*/
package qr // import "github.com/unixdj/qrtext"

import (
	"strings"

	"github.com/unixdj/qrtext/coding"
)

// Options controls decoding.  The zero value is valid.
type Options struct {
	// AssumeShiftJIS selects Shift JIS for all byte segments instead
	// of guessing.  See LocaleAssumesShiftJIS.
	AssumeShiftJIS bool

	// ByteEncoding is the IANA name of the character encoding of
	// byte segments.  If set, it overrides AssumeShiftJIS and the
	// guess.
	ByteEncoding string

	// Strict rejects a bit stream with more than 6 bits or any
	// non-zero bits following the terminator.
	Strict bool

	// TruncatedTerminator accepts fewer than 4 zero bits at the end
	// of the data as the terminator (ISO/IEC 18004:2006, 7.4.9).
	// Otherwise every segment, the terminator included, starts with
	// a full 4 bit mode indicator.
	TruncatedTerminator bool
}

// A Decoder decodes QR bit streams.  A Decoder is immutable and safe
// for concurrent use.
type Decoder struct {
	opt Options
}

// NewDecoder returns a Decoder with the given options.  If opt is nil,
// default options are used.
func NewDecoder(opt *Options) *Decoder {
	d := &Decoder{}
	if opt != nil {
		d.opt = *opt
	}
	return d
}

// Decode decodes data codewords of a QR code of version v into text.
func Decode(data []byte, v coding.Version, opt *Options) (string, error) {
	return NewDecoder(opt).Decode(data, v)
}

// Decode decodes data codewords of a QR code of version v into text.
func (d *Decoder) Decode(data []byte, v coding.Version) (string, error) {
	if !v.Valid() {
		return "", &DecodeError{Msg: "version " + v.String(),
			Err: coding.ErrVersion}
	}
	bits := coding.NewBitSource(data)
	var b strings.Builder
	for {
		mode, err := readMode(bits, d.opt.TruncatedTerminator)
		if err != nil {
			return "", err
		}
		if mode == coding.Terminator {
			break
		}
		count, err := bits.ReadBits(mode.CharacterCountBits(v))
		if err != nil {
			return "", readError(mode, err)
		}
		n := int(count)
		switch mode {
		case coding.Numeric:
			err = decodeNumeric(bits, &b, n)
		case coding.Alphanumeric:
			err = decodeAlphanumeric(bits, &b, n)
		case coding.Byte:
			err = d.decodeByte(bits, &b, n)
		case coding.Kanji:
			err = decodeKanji(bits, &b, n)
		default:
			err = &DecodeError{Msg: "unsupported mode " + mode.String()}
		}
		if err != nil {
			return "", err
		}
	}
	if d.opt.Strict {
		if err := checkTrailing(bits); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// readMode reads a mode indicator.  If truncated is set, fewer than 4
// zero bits at the end of the data are the terminator.
func readMode(bits *coding.BitSource, truncated bool) (coding.Mode, error) {
	if n := bits.Available(); truncated && n < 4 {
		v, err := bits.ReadBits(n)
		if err != nil || v != 0 {
			return 0, &DecodeError{Msg: "truncated mode indicator"}
		}
		return coding.Terminator, nil
	}
	v, err := bits.ReadBits(4)
	if err != nil {
		return 0, readError(coding.Terminator, err)
	}
	mode, err := coding.ModeForBits(v)
	if err != nil {
		return 0, &DecodeError{Msg: "unknown mode", Err: err}
	}
	return mode, nil
}

// checkTrailing checks that at most 6 zero bits follow the terminator.
func checkTrailing(bits *coding.BitSource) error {
	n := bits.Available()
	if n == 0 {
		return nil
	}
	if n > 6 {
		return &DecodeError{Msg: "excess bits after terminator"}
	}
	if v, err := bits.ReadBits(n); err != nil || v != 0 {
		return &DecodeError{Msg: "non-zero bits after terminator"}
	}
	return nil
}
