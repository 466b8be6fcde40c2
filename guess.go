// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import "strings"

// IANA names of character encodings returned by GuessEncoding.
const (
	ShiftJIS = "Shift_JIS"
	Latin1   = "ISO-8859-1"
)

// GuessEncoding returns the IANA name of the character encoding of
// byte segment data b: Shift_JIS if assumeShiftJIS is set or b looks
// like Shift JIS, otherwise ISO-8859-1.
//
// ISO 8859-1 doesn't use bytes 0x80 to 0x9f, which are first bytes of
// double byte characters in Shift JIS.  The first such byte followed
// by a valid second byte selects Shift JIS.
func GuessEncoding(b []byte, assumeShiftJIS bool) string {
	if assumeShiftJIS {
		return ShiftJIS
	}
	for i := 0; i < len(b)-1; i++ {
		c, next := b[i], b[i+1]
		if c < 0x80 || c > 0x9f {
			continue
		}
		if c&1 == 0 {
			if 0x40 <= next && next <= 0x9e {
				return ShiftJIS
			}
		} else if 0x9f <= next && next <= 0x7c {
			// Empty range, odd first bytes never match.  The
			// intended second byte range is unknown.
			return ShiftJIS
		}
	}
	return Latin1
}

// LocaleAssumesShiftJIS reports whether the locale, either a POSIX
// locale name such as "ja_JP.SJIS" or a bare codeset name, uses
// Shift JIS or EUC-JP.  The result is meant for
// Options.AssumeShiftJIS.
func LocaleAssumesShiftJIS(locale string) bool {
	cs := locale
	if i := strings.IndexByte(cs, '.'); i >= 0 {
		cs = cs[i+1:]
	}
	if i := strings.IndexByte(cs, '@'); i >= 0 {
		cs = cs[:i]
	}
	cs = strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(cs))
	switch cs {
	case "shiftjis", "sjis", "eucjp", "ujis":
		return true
	}
	return false
}
