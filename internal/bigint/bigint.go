// Copyright 2026 The EURE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bigint gives PrimitiveValue's Integer variant arbitrary
// precision, the same way the teacher repo backs every CUE number with
// github.com/cockroachdb/apd/v3 rather than a machine int (see
// cuelang.org/go's own use of apd.Decimal throughout internal/core/adt).
//
// An Int is always constrained to be integral: Exponent is never negative
// and there is no fractional part. Schema range/multiple-of constraints
// operate directly on the underlying apd.Decimal so no precision is lost
// converting to int64 for numbers outside that range.
package bigint

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Int is an arbitrary-precision integer.
type Int struct {
	d apd.Decimal
}

var arithCtx = apd.BaseContext.WithPrecision(200)

// FromInt64 builds an Int from a machine integer.
func FromInt64(n int64) Int {
	var i Int
	i.d.SetInt64(n)
	return i
}

// Parse parses a decimal integer literal such as "123" or "-456".
func Parse(s string) (Int, error) {
	var i Int
	_, _, err := i.d.SetString(s)
	if err != nil {
		return Int{}, fmt.Errorf("bigint: invalid integer literal %q: %w", s, err)
	}
	if i.d.Exponent != 0 {
		return Int{}, fmt.Errorf("bigint: %q is not an integer", s)
	}
	return i, nil
}

// String renders the integer in base 10.
func (i Int) String() string { return i.d.Text('f') }

// Decimal exposes the underlying value for range/divisibility arithmetic.
func (i Int) Decimal() *apd.Decimal { return &i.d }

// Cmp compares two integers: -1, 0, or 1.
func (i Int) Cmp(o Int) int {
	return i.d.Cmp(&o.d)
}

// Int64 reports the value as an int64 and whether it fit without loss.
func (i Int) Int64() (int64, bool) {
	n, err := i.d.Int64()
	return n, err == nil
}

// Float64 converts the integer to a float64, as schema float validation
// does when coercing an Integer node to a float schema (SPEC_FULL.md
// §4.4 "accepts ... integer coerced to f64 when representable").
func (i Int) Float64() float64 {
	f, _ := i.d.Float64()
	return f
}

// DivisibleBy reports whether i is an exact multiple of n (n != 0).
func DivisibleBy(i, n Int) bool {
	var rem apd.Decimal
	_, err := arithCtx.Rem(&rem, &i.d, &n.d)
	if err != nil {
		return false
	}
	return rem.IsZero()
}
