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

import (
	"fmt"

	"github.com/eure-lang/eure/path"
	"github.com/eure-lang/eure/token"
)

// ConversionErrorKind discriminates the extractor's typed errors
// (SPEC_FULL.md §6 "Schema extraction").
type ConversionErrorKind int

const (
	EmptyTypePath ConversionErrorKind = iota
	UnknownPrimitiveType
	UnknownExtensionPath
	InvalidTypePath
	InvalidTypeName
	UnsupportedConstruct
	InvalidExtensionValue
	MissingRequiredExtension
	ConflictingExtensions
	InvalidConstraintValue
	InvalidRangeString
	UndefinedTypeReference
)

// ConversionError is the extractor's error type. It implements
// github.com/eure-lang/eure/errors.Error.
type ConversionError struct {
	Kind ConversionErrorKind
	At   path.Path

	Extension  string   // InvalidExtensionValue, MissingRequiredExtension
	Extensions []string // ConflictingExtensions
	Constraint string   // InvalidConstraintValue
	Value      string   // InvalidConstraintValue, InvalidTypeName
	RangeStr   string   // InvalidRangeString
	TypeName   string   // UndefinedTypeReference
	Msg        string   // UnsupportedConstruct
}

func (e *ConversionError) Error() string {
	switch e.Kind {
	case EmptyTypePath:
		return fmt.Sprintf("%s: empty type path", e.At)
	case UnknownPrimitiveType:
		return fmt.Sprintf("%s: unknown primitive type", e.At)
	case UnknownExtensionPath:
		return fmt.Sprintf("%s: unknown extension path", e.At)
	case InvalidTypePath:
		return fmt.Sprintf("%s: invalid type path", e.At)
	case InvalidTypeName:
		return fmt.Sprintf("%s: invalid type name %q", e.At, e.Value)
	case UnsupportedConstruct:
		return fmt.Sprintf("%s: unsupported construct: %s", e.At, e.Msg)
	case InvalidExtensionValue:
		return fmt.Sprintf("%s: invalid value for extension $%s", e.At, e.Extension)
	case MissingRequiredExtension:
		return fmt.Sprintf("%s: missing required extension $%s", e.At, e.Extension)
	case ConflictingExtensions:
		return fmt.Sprintf("%s: conflicting extensions %v", e.At, e.Extensions)
	case InvalidConstraintValue:
		return fmt.Sprintf("%s: invalid value %q for constraint %s", e.At, e.Value, e.Constraint)
	case InvalidRangeString:
		return fmt.Sprintf("%s: invalid range string %q", e.At, e.RangeStr)
	case UndefinedTypeReference:
		return fmt.Sprintf("%s: undefined type reference %q", e.At, e.TypeName)
	default:
		return fmt.Sprintf("%s: schema conversion error", e.At)
	}
}

func (e *ConversionError) Path() []string           { return e.At.Strings() }
func (e *ConversionError) Position() token.Position { return token.NoPos }
