// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "testing"

func TestModeForBits(t *testing.T) {
	valid := map[uint32]Mode{
		0x0: Terminator, 0x1: Numeric, 0x2: Alphanumeric,
		0x3: StructAppend, 0x4: Byte, 0x5: FNC1First, 0x7: ECI,
		0x8: Kanji, 0x9: FNC1Second, 0xd: Hanzi,
	}
	for bits := uint32(0); bits < 0x20; bits++ {
		m, err := ModeForBits(bits)
		if want, ok := valid[bits]; ok {
			if err != nil || m != want {
				t.Errorf("ModeForBits(%#x) = %v, %v, want %v",
					bits, m, err, want)
			}
		} else if err != ModeError(bits) {
			t.Errorf("ModeForBits(%#x) = %v, %v, want ModeError",
				bits, m, err)
		}
	}
}

func TestCharacterCountBits(t *testing.T) {
	for _, v := range []struct {
		m    Mode
		want [3]int
	}{
		{Numeric, [3]int{10, 12, 14}},
		{Alphanumeric, [3]int{9, 11, 13}},
		{Byte, [3]int{8, 16, 16}},
		{Kanji, [3]int{8, 10, 12}},
		{Hanzi, [3]int{8, 10, 12}},
		{Terminator, [3]int{0, 0, 0}},
		{ECI, [3]int{0, 0, 0}},
		{Mode(0xff), [3]int{0, 0, 0}},
	} {
		for class, vers := range [3][2]Version{{1, 9}, {10, 26}, {27, 40}} {
			for _, ver := range vers {
				if got := v.m.CharacterCountBits(ver); got != v.want[class] {
					t.Errorf("%v.CharacterCountBits(%v) = %d, want %d",
						v.m, ver, got, v.want[class])
				}
			}
		}
	}
}

func TestVersion(t *testing.T) {
	for _, v := range []struct {
		v     Version
		valid bool
		class int
	}{
		{0, false, Class0},
		{1, true, Class0},
		{9, true, Class0},
		{10, true, Class1},
		{26, true, Class1},
		{27, true, Class2},
		{40, true, Class2},
		{41, false, Class2},
	} {
		if v.v.Valid() != v.valid {
			t.Errorf("Version(%v).Valid() = %v", v.v, !v.valid)
		}
		if v.valid && v.v.SizeClass() != v.class {
			t.Errorf("Version(%v).SizeClass() = %d, want %d",
				v.v, v.v.SizeClass(), v.class)
		}
	}
}

func TestModeString(t *testing.T) {
	for m, want := range map[Mode]string{
		Numeric: "numeric", Kanji: "kanji", ECI: "eci", 0x6: "6",
	} {
		if s := m.String(); s != want {
			t.Errorf("Mode(%d).String() = %q, want %q", m, s, want)
		}
	}
}
