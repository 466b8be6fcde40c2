// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// A Segment describes a QR code segment.
//
// Text of Numeric, Alphanumeric and Byte segments is encoded as is.
// Text of Kanji segments is Shift JIS.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents a Segment that cannot be encoded.
type SegmentError struct {
	Segment
	Version Version
}

func (e SegmentError) Error() string {
	switch e.Mode {
	case Numeric, Alphanumeric, Byte, Kanji:
		if e.Version == 0 {
			return fmt.Sprintf("qr: non-%s string %#q", e.Mode, e.Text)
		}
		return fmt.Sprintf("qr: %s string %#q not encodable in version %s",
			e.Mode, e.Text, e.Version)
	}
	return fmt.Sprintf("qr: mode %s not encodable", e.Mode)
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table.  Used after validation.
// "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

// isKanjiPair reports whether the Shift JIS pair hi, lo is encodable
// in kanji mode: 0x8140 to 0x9ffc and 0xe040 to 0xebbf.
func isKanjiPair(hi, lo byte) bool {
	switch {
	case lo < 0x40 || lo > 0xfc || lo == 0x7f:
		return false
	case 0x81 <= hi && hi <= 0x9f:
		return true
	case 0xe0 <= hi && hi <= 0xea:
		return true
	}
	return hi == 0xeb && lo <= 0xbf
}

// count returns the character count of the text and reports whether
// the text is valid for the mode.
func (seg Segment) count() (int, bool) {
	s := seg.Text
	switch seg.Mode {
	case Numeric:
		for i := 0; i < len(s); i++ {
			if uint32(s[i]-'0') >= 10 {
				return 0, false
			}
		}
	case Alphanumeric:
		for i := 0; i < len(s); i++ {
			if alphamask>>(uint32(s[i])-' ')&1 == 0 {
				return 0, false
			}
		}
	case Byte:
	case Kanji:
		if len(s)&1 != 0 {
			return 0, false
		}
		for i := 0; i < len(s); i += 2 {
			if !isKanjiPair(s[i], s[i+1]) {
				return 0, false
			}
		}
		return len(s) >> 1, true
	default:
		return 0, false
	}
	return len(s), true
}

// Encode writes seg encoded for QR version v to b.
func (seg Segment) Encode(b *Bits, v Version) error {
	if !v.Valid() {
		return ErrVersion
	}
	n, ok := seg.count()
	if !ok {
		return SegmentError{seg, v}
	}
	clen := seg.Mode.CharacterCountBits(v)
	if n >= 1<<clen {
		return SegmentError{seg, v}
	}
	b.Write(uint32(seg.Mode), 4)
	b.Write(uint32(n), clen)

	s := seg.Text
	switch seg.Mode {
	case Numeric:
		for ; len(s) >= 3; s = s[3:] {
			b.Write(uint32(s[0]-'0')*100+uint32(s[1]-'0')*10+
				uint32(s[2]-'0'), 10)
		}
		if len(s) == 2 {
			b.Write(uint32(s[0]-'0')*10+uint32(s[1]-'0'), 7)
		} else if len(s) == 1 {
			b.Write(uint32(s[0]-'0'), 4)
		}
	case Alphanumeric:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(alpha[s[0]&0x3f])*45+
				uint32(alpha[s[1]&0x3f]), 11)
		}
		if len(s) == 1 {
			b.Write(uint32(alpha[s[0]&0x3f]), 6)
		}
	case Byte:
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
	case Kanji:
		for ; len(s) >= 2; s = s[2:] {
			b.Write(uint32(s[0]&^0xc0)*0xc0+uint32(s[1])-0x100, 13)
		}
	}
	return nil
}

// KanjiSegment returns a Kanji segment for the UTF-8 string s.
// Every character of s must be encodable in kanji mode.
func KanjiSegment(s string) (Segment, error) {
	t, err := japanese.ShiftJIS.NewEncoder().String(s)
	if err != nil {
		return Segment{}, fmt.Errorf("qr: %#q: %w", s, err)
	}
	seg := Segment{t, Kanji}
	if _, ok := seg.count(); !ok {
		return Segment{}, SegmentError{Segment: seg}
	}
	return seg, nil
}

// Latin1Segment returns a Byte segment for the UTF-8 string s encoded
// as ISO 8859-1.
func Latin1Segment(s string) (Segment, error) {
	t, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return Segment{}, fmt.Errorf("qr: %#q: %w", s, err)
	}
	return Segment{t, Byte}, nil
}

// Encode returns the bit stream of segments encoded for QR version v
// followed by the terminator.
func Encode(v Version, segs ...Segment) ([]byte, error) {
	var b Bits
	for _, seg := range segs {
		if err := seg.Encode(&b, v); err != nil {
			return nil, err
		}
	}
	b.Terminate()
	return b.Bytes(), nil
}
