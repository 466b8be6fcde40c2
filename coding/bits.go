// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"errors"
	"fmt"
)

var (
	ErrBitCount  = errors.New("qr: bit count out of range")
	ErrShortRead = errors.New("qr: not enough bits")
)

// BitSource reads bits from the underlying buffer, most significant
// bit first.
type BitSource struct {
	b   []byte
	pos int
}

// NewBitSource returns a BitSource reading from b.
func NewBitSource(b []byte) *BitSource { return &BitSource{b: b} }

// Offset returns the number of bits read.
func (s *BitSource) Offset() int { return s.pos }

// Available returns the number of bits left.
func (s *BitSource) Available() int { return len(s.b)*8 - s.pos }

// ReadBits reads n bits and returns them as an unsigned integer.
// n must be between 0 and 32.  If fewer than n bits are left,
// ReadBits returns an error wrapping ErrShortRead and s is not
// advanced.
func (s *BitSource) ReadBits(n int) (uint32, error) {
	if n < 0 || n > 32 {
		return 0, ErrBitCount
	}
	if avail := s.Available(); n > avail {
		return 0, fmt.Errorf("%w: need %d at offset %d, have %d",
			ErrShortRead, n, s.pos, avail)
	}
	var v uint32
	for n > 0 {
		off := s.pos & 7
		take := min(8-off, n)
		v = v<<take | uint32(s.b[s.pos>>3])>>(8-off-take)&(1<<take-1)
		s.pos += take
		n -= take
	}
	return v, nil
}

// Bits accumulates a bit stream, most significant bit first.
type Bits struct {
	b    []byte
	nbit int
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the number of bits written.
func (b *Bits) Bits() int { return b.nbit }

// Bytes returns the bit stream.  A fractional last byte is padded
// with zero bits.
func (b *Bits) Bytes() []byte { return b.b }

// Write appends the low nbit bits of v to b.  nbit must be between 0
// and 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Terminate writes the terminator mode indicator.
func (b *Bits) Terminate() { b.Write(uint32(Terminator), 4) }
