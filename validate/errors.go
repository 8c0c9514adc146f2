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

package validate

import (
	"fmt"
	"strings"

	"github.com/eure-lang/eure/path"
	"github.com/eure-lang/eure/token"
)

// ErrorKind discriminates the validator's typed errors (SPEC_FULL.md §4.4).
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	MissingRequiredField
	UnknownField
	OutOfRange
	StringLengthOutOfBounds
	PatternMismatch
	ArrayLengthOutOfBounds
	MapSizeOutOfBounds
	TupleLengthMismatch
	ArrayNotUnique
	ArrayMissingContains
	NoVariantMatched
	AmbiguousUnion
	InvalidVariantTag
	LiteralMismatch
	LanguageMismatch
	InvalidKeyType
	NotMultipleOf
	UndefinedTypeReference
	InvalidRegexPattern
	MaxDepthExceeded
	HoleExists
)

// ValidationError is the validator's accumulated error type. It implements
// github.com/eure-lang/eure/errors.Error.
type ValidationError struct {
	Kind ErrorKind
	At   path.Path
	Pos  token.Position

	Expected string // TypeMismatch, InvalidKeyType
	Field    string // MissingRequiredField, UnknownField
	Tag      string // InvalidVariantTag
	Variants []string // AmbiguousUnion
	// VariantErrors holds, for NoVariantMatched under an untagged union, the
	// errors each candidate variant produced, keyed by variant name.
	VariantErrors map[string][]*ValidationError
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case TypeMismatch:
		return fmt.Sprintf("%s: expected %s", e.At, e.Expected)
	case MissingRequiredField:
		return fmt.Sprintf("%s: missing required field %q", e.At, e.Field)
	case UnknownField:
		return fmt.Sprintf("%s: unknown field %q", e.At, e.Field)
	case OutOfRange:
		return fmt.Sprintf("%s: value out of range", e.At)
	case StringLengthOutOfBounds:
		return fmt.Sprintf("%s: string length out of bounds", e.At)
	case PatternMismatch:
		return fmt.Sprintf("%s: does not match pattern", e.At)
	case ArrayLengthOutOfBounds:
		return fmt.Sprintf("%s: array length out of bounds", e.At)
	case MapSizeOutOfBounds:
		return fmt.Sprintf("%s: map size out of bounds", e.At)
	case TupleLengthMismatch:
		return fmt.Sprintf("%s: tuple length mismatch", e.At)
	case ArrayNotUnique:
		return fmt.Sprintf("%s: array elements are not unique", e.At)
	case ArrayMissingContains:
		return fmt.Sprintf("%s: array has no element matching `contains`", e.At)
	case NoVariantMatched:
		var names []string
		for n := range e.VariantErrors {
			names = append(names, n)
		}
		return fmt.Sprintf("%s: no union variant matched (tried %s)", e.At, strings.Join(names, ", "))
	case AmbiguousUnion:
		return fmt.Sprintf("%s: ambiguous union, matched more than one variant: %s", e.At, strings.Join(e.Variants, ", "))
	case InvalidVariantTag:
		return fmt.Sprintf("%s: invalid variant tag %q", e.At, e.Tag)
	case LiteralMismatch:
		return fmt.Sprintf("%s: does not match literal value", e.At)
	case LanguageMismatch:
		return fmt.Sprintf("%s: language tag mismatch", e.At)
	case InvalidKeyType:
		return fmt.Sprintf("%s: invalid key type, expected %s", e.At, e.Expected)
	case NotMultipleOf:
		return fmt.Sprintf("%s: not a multiple of the required value", e.At)
	case UndefinedTypeReference:
		return fmt.Sprintf("%s: undefined type reference", e.At)
	case InvalidRegexPattern:
		return fmt.Sprintf("%s: invalid regular expression pattern", e.At)
	case MaxDepthExceeded:
		return fmt.Sprintf("%s: maximum validation recursion depth exceeded", e.At)
	case HoleExists:
		return fmt.Sprintf("%s: unfilled hole", e.At)
	default:
		return fmt.Sprintf("%s: validation error", e.At)
	}
}

func (e *ValidationError) Path() []string           { return e.At.Strings() }
func (e *ValidationError) Position() token.Position { return e.Pos }

// WarningKind discriminates the validator's non-fatal warnings.
type WarningKind int

const (
	UnknownExtension WarningKind = iota
	DeprecatedField
)

// ValidationWarning is a non-fatal finding: it does not affect is_valid.
type ValidationWarning struct {
	Kind      WarningKind
	At        path.Path
	Extension string // UnknownExtension
	Field     string // DeprecatedField
}

func (w *ValidationWarning) String() string {
	switch w.Kind {
	case UnknownExtension:
		return fmt.Sprintf("%s: unknown extension $%s", w.At, w.Extension)
	case DeprecatedField:
		return fmt.Sprintf("%s: field %q is deprecated", w.At, w.Field)
	default:
		return fmt.Sprintf("%s: warning", w.At)
	}
}
