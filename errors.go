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

import "github.com/capitalone/radix/radixutils"

// Supported radix range.
const (
	MinRadix = radixutils.MinRadix
	MaxRadix = radixutils.MaxRadix
)

// Errors returned by this package. Use errors.Is to test for them.
var (
	ErrRadixNotSupported = radixutils.ErrRadixNotSupported
	ErrEmptyInput        = radixutils.ErrEmptyInput
	ErrInvalidDigit      = radixutils.ErrInvalidDigit
	ErrOverflow          = radixutils.ErrOverflow
	ErrInternal          = radixutils.ErrInternal
)

type (
	// RadixError carries the rejected radix.
	RadixError = radixutils.RadixError
	// DigitError carries the rejected character, its position and the radix.
	DigitError = radixutils.DigitError
)
