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

package radix

import (
	"iter"

	"github.com/capitalone/radix/radixutils"
)

// A Value is a non-negative integer written in a radix between MinRadix and
// MaxRadix. Its digits are canonical: uppercase, without surrounding
// whitespace or redundant leading zeros, and "0" for zero.
//
// The zero Value is zero in radix 10.
type Value struct {
	digits string
	radix  int
	conv   *Converter
}

// FromUint64 returns n in radix 10.
func FromUint64(n uint64) Value {
	return defaultConverter.FromUint64(n)
}

// Parse returns the Value written as text in radix. See Converter.Parse.
func Parse(text string, radix int) (Value, error) {
	return defaultConverter.Parse(text, radix)
}

// MustParse is like Parse but panics if text cannot be parsed.
func MustParse(text string, radix int) Value {
	v, err := Parse(text, radix)
	if err != nil {
		panic("radix: MustParse(" + text + "): " + err.Error())
	}
	return v
}

// Radix returns the radix v is written in.
func (v Value) Radix() int {
	if v.radix == 0 {
		return 10
	}
	return v.radix
}

// String returns the canonical digits of v.
func (v Value) String() string {
	if v.digits == "" {
		return "0"
	}
	return v.digits
}

// Digits yields the digits of v, most significant first.
func (v Value) Digits() iter.Seq[rune] {
	s := v.String()
	return func(yield func(rune) bool) {
		for _, r := range s {
			if !yield(r) {
				return
			}
		}
	}
}

// AsDecimal returns the magnitude of v.
// It fails only if v was not built by this package.
func (v Value) AsDecimal() (uint64, error) {
	codec, err := radixutils.NewCodec(v.Radix())
	if err != nil {
		return 0, err
	}
	return v.converter().decode(v.String(), codec)
}

// WithRadix returns the same magnitude written in radix.
func (v Value) WithRadix(radix int) (Value, error) {
	if radix < MinRadix || radix > MaxRadix {
		return Value{}, &RadixError{Radix: radix}
	}
	mag, err := v.AsDecimal()
	if err != nil {
		return Value{}, err
	}
	c := v.converter()
	digits, err := c.encode(mag, radix)
	if err != nil {
		return Value{}, err
	}
	return Value{digits: digits, radix: radix, conv: c}, nil
}

// Equal reports whether v and w have the same magnitude, whatever their radices.
func (v Value) Equal(w Value) bool {
	a, err := v.AsDecimal()
	if err != nil {
		return false
	}
	b, err := w.AsDecimal()
	return err == nil && a == b
}

func (v Value) converter() *Converter {
	if v.conv == nil {
		return defaultConverter
	}
	return v.conv
}
