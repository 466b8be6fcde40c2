// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"strings"

	"github.com/unixdj/qrtext/coding"
)

// DecodeError reports a bit stream that cannot be decoded.  Err is
// the underlying error, if any; running out of bits wraps
// coding.ErrShortRead.
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return "qr: " + e.Msg + ": " +
			strings.TrimPrefix(e.Err.Error(), "qr: ")
	}
	return "qr: " + e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func readError(mode coding.Mode, err error) error {
	msg := "mode indicator"
	if mode != coding.Terminator {
		msg = mode.String() + " segment"
	}
	return &DecodeError{Msg: msg, Err: err}
}
