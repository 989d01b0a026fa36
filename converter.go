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
	"fmt"
	"log/slog"
	"strings"

	"github.com/capitalone/radix/radixutils"
)

// A Converter creates Values and traces conversions to its logger.
type Converter struct {
	logger *slog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger receiving Debug records for each conversion.
// A nil logger leaves the default in place.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewConverter returns a Converter. By default nothing is logged.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{logger: discardLogger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	discardLogger    = slog.New(slog.DiscardHandler)
	defaultConverter = NewConverter()
)

func (c *Converter) log() *slog.Logger {
	if c.logger == nil {
		return discardLogger
	}
	return c.logger
}

// FromUint64 returns n in radix 10.
func (c *Converter) FromUint64(n uint64) Value {
	digits, err := c.encode(n, 10)
	if err != nil {
		// radix 10 is always supported
		panic("radix: " + err.Error())
	}
	return Value{digits: digits, radix: 10, conv: c}
}

// Parse validates text as a number in the given radix and returns its
// canonical Value. Surrounding whitespace is ignored and lowercase letters are
// accepted. Redundant leading zeros are dropped.
func (c *Converter) Parse(text string, radix int) (Value, error) {
	codec, err := radixutils.NewCodec(radix)
	if err != nil {
		return Value{}, err
	}
	mag, err := c.decode(text, codec)
	if err != nil {
		return Value{}, err
	}
	digits, err := c.encode(mag, radix)
	if err != nil {
		return Value{}, err
	}
	return Value{digits: digits, radix: radix, conv: c}, nil
}

func (c *Converter) decode(text string, codec radixutils.Codec) (uint64, error) {
	mag, err := radixutils.ParseUint(strings.TrimSpace(text), codec)
	if err != nil {
		return 0, err
	}
	c.log().Debug("decoded digits", "radix", codec.Radix(), "digits", text, "magnitude", mag)
	return mag, nil
}

// encode expects radix to be validated already; any failure is an internal error.
func (c *Converter) encode(mag uint64, radix int) (string, error) {
	codec, err := radixutils.NewCodec(radix)
	if err != nil {
		return "", err
	}
	digits, err := radixutils.FormatUint(mag, codec)
	if err != nil {
		return "", fmt.Errorf("%w: encoding %d in radix %d: %v", ErrInternal, mag, radix, err)
	}
	c.log().Debug("encoded magnitude", "radix", radix, "magnitude", mag, "digits", digits)
	return digits, nil
}
