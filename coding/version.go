// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR bit stream details: versions,
// segment modes, and bit level reading and writing of data codewords.
package coding // import "github.com/unixdj/qrtext/coding"

import (
	"errors"
	"strconv"
)

var ErrVersion = errors.New("qr: invalid version")

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 pixels on a side.
// Versions run from 1 to 40: the larger the version, the more
// information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

// QR version size classes.  The size class selects the length of the
// character count field.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// Valid reports whether v is a QR version.
func (v Version) Valid() bool {
	return MinVersion <= v && v <= MaxVersion
}

// SizeClass returns the size class of v, as documented under Class0.
// The result for an invalid version is meaningless.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

func (v Version) String() string { return strconv.Itoa(int(v)) }
