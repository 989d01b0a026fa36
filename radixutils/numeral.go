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
	"fmt"
	"math/bits"
)

// Num computes the magnitude of an array of uint16, where each element represents
// one digit in the given radix. The array is arranged with the most significant digit in element 0,
// down to the least significant digit in element len-1.
// Redundant leading zeros are allowed. A magnitude above math.MaxUint64 fails with ErrOverflow.
func Num(s []uint16, radix uint64) (uint64, error) {
	if err := checkRadix(radix); err != nil {
		return 0, err
	}
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	var x uint64
	maxv := uint16(radix - 1)
	for i, v := range s {
		if v > maxv {
			return 0, fmt.Errorf("%w: value at %d out of range: got %d - expected 0..%d", ErrInvalidDigit, i, v, maxv)
		}
		hi, lo := bits.Mul64(x, radix)
		if hi != 0 {
			return 0, ErrOverflow
		}
		var carry uint64
		x, carry = bits.Add64(lo, uint64(v), 0)
		if carry != 0 {
			return 0, ErrOverflow
		}
	}
	return x, nil
}

// Str returns the digits representing x in the specified radix, most
// significant digit in element 0. Zero is represented by a single 0 digit.
// Digits are produced least significant first onto a stack and popped into place.
func Str(x uint64, radix uint64) ([]uint16, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if x == 0 {
		return []uint16{0}, nil
	}

	var stack []uint16
	for x > 0 {
		stack = append(stack, uint16(x%radix))
		x /= radix
	}

	r := make([]uint16, 0, len(stack))
	for len(stack) > 0 {
		top := len(stack) - 1
		r = append(r, stack[top])
		stack = stack[:top]
	}
	return r, nil
}

// ParseUint decodes digit text of the Codec's radix into its magnitude.
func ParseUint(s string, c Codec) (uint64, error) {
	n, err := c.Encode(s)
	if err != nil {
		return 0, err
	}
	return Num(n, uint64(c.Radix()))
}

// FormatUint constructs the canonical digit text for x in the Codec's radix.
func FormatUint(x uint64, c Codec) (string, error) {
	n, err := Str(x, uint64(c.Radix()))
	if err != nil {
		return "", err
	}
	return c.Decode(n)
}
