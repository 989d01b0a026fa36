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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {

	testSpec := []struct {
		radix   uint64
		intv    uint64
		numeral []uint16
	}{
		{
			10,
			100,
			[]uint16{1, 0, 0},
		},
		{
			36,
			36 * 36 * 36,
			[]uint16{1, 0, 0, 0},
		},
		{
			2,
			1_000_000,
			[]uint16{1, 1, 1, 1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0},
		},
		{
			16,
			math.MaxUint64,
			[]uint16{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15},
		},
		{
			7,
			0,
			[]uint16{0},
		},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			v, err := Num(spec.numeral, spec.radix)
			require.NoError(t, err, "error in Num")
			require.Equal(t, spec.intv, v)

			r, err := Str(v, spec.radix)
			require.NoError(t, err, "error in Str")
			require.Equal(t, spec.numeral, r)
		})
	}
}

func TestNumLeadingZeros(t *testing.T) {
	s := make([]uint16, 200)
	s[len(s)-1] = 1

	v, err := Num(s, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)
}

func TestEncodeError(t *testing.T) {

	testSpec := []struct {
		radix   uint64
		numeral []uint16
		err     error
	}{
		{
			10,
			[]uint16{10, 0, 0},
			ErrInvalidDigit,
		},
		{
			37,
			[]uint16{1, 0, 0, 0, 0, 0, 0, 0},
			ErrRadixNotSupported,
		},
		{
			1,
			[]uint16{0},
			ErrRadixNotSupported,
		},
		{
			10,
			nil,
			ErrEmptyInput,
		},
		{
			// 2^64
			16,
			[]uint16{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			ErrOverflow,
		},
		{
			// math.MaxUint64 + 1, overflowing on the final addition
			10,
			[]uint16{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 6},
			ErrOverflow,
		},
	}

	for idx, spec := range testSpec {
		sampleNumber := idx + 1
		t.Run(fmt.Sprintf("Sample%d", sampleNumber), func(t *testing.T) {
			_, err := Num(spec.numeral, spec.radix)
			require.ErrorIs(t, err, spec.err)
		})
	}
}

func TestDecodeRadixError(t *testing.T) {
	for _, radix := range []uint64{0, 1, 37, 65537} {
		t.Run(fmt.Sprintf("Radix%d", radix), func(t *testing.T) {
			_, err := Str(100, radix)
			require.ErrorIs(t, err, ErrRadixNotSupported)
		})
	}
}

func TestParseFormatUint(t *testing.T) {
	c, err := NewCodec(32)
	require.NoError(t, err)

	v, err := ParseUint("deadbeef", c)
	require.NoError(t, err)
	require.Equal(t, uint64(462058535375), v)

	s, err := FormatUint(v, c)
	require.NoError(t, err)
	require.Equal(t, "DEADBEEF", s)

	_, err = ParseUint("", c)
	require.ErrorIs(t, err, ErrEmptyInput)

	_, err = ParseUint("W", c)
	require.ErrorIs(t, err, ErrInvalidDigit)
}
