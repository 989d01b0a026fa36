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

// Package radixutils provides the digit-level helpers behind the radix
// package: mapping characters to ordinal digit values and converting
// between ordinal digits and uint64 magnitudes.
package radixutils

import (
	"fmt"
	"unicode/utf8"
)

// Alphabet holds the digits of every supported radix in ordinal order.
// A radix r uses the first r characters.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Codec supports the conversion of digit characters of one radix into ordinal
// values from 0 to radix-1 and back.
// Element 'rtu' (rune-to-uint16) maps both cases of a letter to the same ordinal.
// Element 'utr' (uint16-to-rune) maps ordinals to canonical uppercase digits.
type Codec struct {
	rtu map[rune]uint16
	utr []rune
}

// NewCodec builds the Codec for radix, which must be in [MinRadix, MaxRadix].
func NewCodec(radix int) (Codec, error) {
	var ret Codec
	if radix < MinRadix || radix > MaxRadix {
		return ret, &RadixError{Radix: radix}
	}

	ret.rtu = make(map[rune]uint16, 2*radix)
	ret.utr = []rune(Alphabet[:radix])
	for i, rv := range ret.utr {
		ret.rtu[rv] = uint16(i)
		if rv >= 'A' {
			ret.rtu[rv+('a'-'A')] = uint16(i)
		}
	}
	return ret, nil
}

// Radix returns the number of digits supported by the Codec.
func (a *Codec) Radix() int {
	return len(a.utr)
}

// Encode the supplied string as an array of ordinal digit values, most
// significant first. Lowercase letters are accepted.
// It is an error for the string to be empty or to contain characters that
// are not digits of the radix.
func (a *Codec) Encode(s string) ([]uint16, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}
	ret := make([]uint16, 0, utf8.RuneCountInString(s))

	i := 0
	for _, rv := range s {
		v, ok := a.rtu[rv]
		if !ok {
			return ret, &DigitError{Digit: rv, Position: i, Radix: a.Radix()}
		}
		ret = append(ret, v)
		i++
	}
	return ret, nil
}

// Decode constructs the canonical digit string from an array of ordinal
// values.
// It is an error for the array to be empty or to contain values outside the
// radix.
func (a *Codec) Decode(n []uint16) (string, error) {
	if len(n) == 0 {
		return "", ErrEmptyInput
	}
	ret := make([]byte, len(n))
	for i, v := range n {
		if int(v) > len(a.utr)-1 {
			return "", fmt.Errorf("%w: numeral at position %d out of range: %d not in [0..%d]", ErrInvalidDigit, i, v, len(a.utr)-1)
		}
		ret[i] = byte(a.utr[v])
	}
	return string(ret), nil
}
