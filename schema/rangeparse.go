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

package schema

import "strings"

// rawBound is one side of a parsed range string, before the caller converts
// the literal text to bigint.Int or float64.
type rawBound struct {
	text string
	set  bool
	incl bool
}

// rawRange is the result of parsing a `range` constraint string. Two forms
// are accepted (SPEC_FULL.md §6 "range-string grammar"):
//
//   - Rust-style: "a..b" (inclusive-exclusive), "a..=b" (inclusive-inclusive),
//     with either side blank for an open end ("..b", "a..", "..=b").
//   - Interval notation: "[a,b]", "(a,b)", "[a,b)", "(a,b]", with either side
//     blank for unbounded.
//
// grounded on eure-schema/src/convert.rs's range-string parser.
func parseRange(s string) (lo, hi rawBound, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return rawBound{}, rawBound{}, &ConversionError{Kind: InvalidRangeString, RangeStr: s}
	}

	if s[0] == '[' || s[0] == '(' {
		return parseIntervalRange(s)
	}
	return parseRustRange(s)
}

func parseIntervalRange(s string) (lo, hi rawBound, err error) {
	if len(s) < 2 {
		return rawBound{}, rawBound{}, &ConversionError{Kind: InvalidRangeString, RangeStr: s}
	}
	loIncl := s[0] == '['
	last := s[len(s)-1]
	if last != ']' && last != ')' {
		return rawBound{}, rawBound{}, &ConversionError{Kind: InvalidRangeString, RangeStr: s}
	}
	hiIncl := last == ']'
	body := s[1 : len(s)-1]
	parts := strings.SplitN(body, ",", 2)
	if len(parts) != 2 {
		return rawBound{}, rawBound{}, &ConversionError{Kind: InvalidRangeString, RangeStr: s}
	}
	loText := strings.TrimSpace(parts[0])
	hiText := strings.TrimSpace(parts[1])
	lo = rawBound{text: loText, set: loText != "", incl: loIncl}
	hi = rawBound{text: hiText, set: hiText != "", incl: hiIncl}
	return lo, hi, nil
}

func parseRustRange(s string) (lo, hi rawBound, err error) {
	idx := strings.Index(s, "..")
	if idx < 0 {
		return rawBound{}, rawBound{}, &ConversionError{Kind: InvalidRangeString, RangeStr: s}
	}
	loText := strings.TrimSpace(s[:idx])
	rest := s[idx+2:]
	hiIncl := false
	if strings.HasPrefix(rest, "=") {
		hiIncl = true
		rest = rest[1:]
	}
	hiText := strings.TrimSpace(rest)
	lo = rawBound{text: loText, set: loText != "", incl: true}
	hi = rawBound{text: hiText, set: hiText != "", incl: hiIncl}
	return lo, hi, nil
}
