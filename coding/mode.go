// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"fmt"
	"strconv"
)

// A Mode is a QR segment mode.  Its value is the 4 bit mode indicator.
type Mode byte

// Segment modes.
const (
	Terminator   Mode = 0x0 // end of message
	Numeric      Mode = 0x1 // numeric
	Alphanumeric Mode = 0x2 // alphanumeric
	StructAppend Mode = 0x3 // structured append
	Byte         Mode = 0x4 // byte
	FNC1First    Mode = 0x5 // FNC1 in 1st position
	ECI          Mode = 0x7 // extended channel interpretation
	Kanji        Mode = 0x8 // kanji, Shift JIS
	FNC1Second   Mode = 0x9 // FNC1 in 2nd position
	Hanzi        Mode = 0xd // hanzi, GB 2312 (GB/T 18284)
)

// mode describes a segment mode.
type mode struct {
	name string

	// countLength lists lengths of the character count field in
	// the three QR version size classes.
	countLength [3]byte
}

var modes = [16]mode{
	Terminator:   {name: "terminator"},
	Numeric:      {"numeric", [3]byte{10, 12, 14}},
	Alphanumeric: {"alphanumeric", [3]byte{9, 11, 13}},
	StructAppend: {name: "structured-append"},
	Byte:         {"byte", [3]byte{8, 16, 16}},
	FNC1First:    {name: "fnc1-in-1st-position"},
	ECI:          {name: "eci"},
	Kanji:        {"kanji", [3]byte{8, 10, 12}},
	FNC1Second:   {name: "fnc1-in-2nd-position"},
	Hanzi:        {"hanzi", [3]byte{8, 10, 12}},
}

// ModeError represents an invalid mode indicator.
type ModeError uint32

func (e ModeError) Error() string {
	return fmt.Sprintf("qr: invalid mode indicator %#x", uint32(e))
}

// ModeForBits returns the Mode for the 4 bit mode indicator bits.
func ModeForBits(bits uint32) (Mode, error) {
	if bits < uint32(len(modes)) && modes[bits].name != "" {
		return Mode(bits), nil
	}
	return 0, ModeError(bits)
}

// CharacterCountBits returns the length in bits of the character
// count field for mode in QR version v.  It returns 0 for modes
// without a character count.
func (m Mode) CharacterCountBits(v Version) int {
	if int(m) < len(modes) {
		return int(modes[m].countLength[v.SizeClass()])
	}
	return 0
}

func (m Mode) String() string {
	if int(m) < len(modes) && modes[m].name != "" {
		return modes[m].name
	}
	return strconv.Itoa(int(m))
}
