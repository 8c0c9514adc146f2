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

package document

import (
	"fmt"

	"github.com/eure-lang/eure/path"
	"github.com/eure-lang/eure/token"
)

// InsertErrorKind discriminates the arena's typed conflict errors
// (SPEC_FULL.md §4.1 "Conflict rules", §6 InsertError).
type InsertErrorKind int

const (
	// AlreadyAssigned: the target already holds content that cannot be
	// silently overwritten (not a Null gap-fill, not a synthetic empty
	// intermediate).
	AlreadyAssigned InsertErrorKind = iota
	// PathConflict: navigation reached a node whose existing kind is
	// incompatible with the requested child kind. Found is one of
	// "value", "array", "tuple", "map".
	PathConflict
	// ExpectedArray: an ArrayIndex segment was applied to a non-array,
	// non-promotable node.
	ExpectedArray
	// ExpectedMap: an Ident/Value/TupleIndex segment was applied to a
	// non-map, non-promotable node.
	ExpectedMap
	// ExpectedTuple: a TupleIndex segment was applied to a node that is
	// neither a Tuple nor promotable to one.
	ExpectedTuple
	// ArrayIndexInvalid: an array index was out of the expected shape.
	ArrayIndexInvalid
	// TupleIndexInvalid: a tuple index was out of the fixed arity.
	TupleIndexInvalid
)

// InsertError is the arena's structural error type. It implements
// github.com/eure-lang/eure/errors.Error.
type InsertError struct {
	Kind          InsertErrorKind
	At            path.Path
	Found         string // valid for PathConflict
	Key           DocumentKey
	Index         int
	ExpectedIndex int
}

func (e *InsertError) Error() string {
	switch e.Kind {
	case AlreadyAssigned:
		return fmt.Sprintf("%s: already assigned", e.At)
	case PathConflict:
		return fmt.Sprintf("%s: path conflict, found %s", e.At, e.Found)
	case ExpectedArray:
		return fmt.Sprintf("%s: expected array", e.At)
	case ExpectedMap:
		return fmt.Sprintf("%s: expected map", e.At)
	case ExpectedTuple:
		return fmt.Sprintf("%s: expected tuple", e.At)
	case ArrayIndexInvalid:
		return fmt.Sprintf("%s: array index invalid: expected %d but got %d", e.At, e.ExpectedIndex, e.Index)
	case TupleIndexInvalid:
		return fmt.Sprintf("%s: tuple index invalid: expected %d but got %d", e.At, e.ExpectedIndex, e.Index)
	default:
		return fmt.Sprintf("%s: insert error", e.At)
	}
}

// Path satisfies github.com/eure-lang/eure/errors.Error.
func (e *InsertError) Path() []string { return e.At.Strings() }

// Position satisfies github.com/eure-lang/eure/errors.Error. The arena
// itself carries no source positions (SPEC_FULL.md §1: the lexer/parser
// is an external collaborator); a host that drives the constructor from
// real source can wrap InsertError with errors.NewAt to attach one.
func (e *InsertError) Position() token.Position { return token.NoPos }
