/*

SPDX-Copyright: Copyright (c) Capital One Services, LLC
SPDX-License-Identifier: Apache-2.0
Copyright 2017 Capital One Services, LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and limitations under the License.

*/

package radixutils

import (
	"errors"
	"fmt"
)

// Supported radix range.
const (
	MinRadix = 2
	MaxRadix = 36
)

var (
	// ErrRadixNotSupported is returned for a radix outside [MinRadix, MaxRadix].
	ErrRadixNotSupported = errors.New("radix not supported")
	// ErrEmptyInput is returned when there are no digits to convert.
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidDigit is returned for a character or ordinal that is not a digit of the radix.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrOverflow is returned when a magnitude does not fit in a uint64.
	ErrOverflow = errors.New("magnitude overflows uint64")
	// ErrInternal signals a broken invariant in the conversion routines.
	ErrInternal = errors.New("internal conversion error")
)

// RadixError reports a radix outside the supported range.
type RadixError struct {
	Radix int
}

func (e *RadixError) Error() string {
	return fmt.Sprintf("radix (%d) not supported: must be between %d and %d", e.Radix, MinRadix, MaxRadix)
}

func (e *RadixError) Unwrap() error { return ErrRadixNotSupported }

// DigitError reports a character that is not a digit of Radix.
// Position counts runes from the start of the input.
type DigitError struct {
	Digit    rune
	Position int
	Radix    int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("character %q at position %d is not a radix-%d digit", e.Digit, e.Position, e.Radix)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }

func checkRadix(radix uint64) error {
	if radix < MinRadix || radix > MaxRadix {
		return &RadixError{Radix: int(radix)}
	}
	return nil
}
