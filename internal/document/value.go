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
	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/path"
)

// Value is the plain, arena-free value tree produced by Document.ToValue.
// It mirrors Content but discards NodeId indirection, extensions, and
// meta-extensions (SPEC_FULL.md §3.3 invariant 6).
//
// The sum type follows the same interface-plus-marker-method idiom as
// cue/ast.Expr: a closed set of concrete types implement valueNode.
type Value interface {
	valueNode()
}

// ValueNull is the null value.
type ValueNull struct{}

func (ValueNull) valueNode() {}

// ValueBool is a boolean value.
type ValueBool struct{ Value bool }

func (ValueBool) valueNode() {}

// ValueInteger is an arbitrary-precision integer.
type ValueInteger struct{ Value bigint.Int }

func (ValueInteger) valueNode() {}

// ValueF32 is a 32-bit float.
type ValueF32 struct{ Value float32 }

func (ValueF32) valueNode() {}

// ValueF64 is a 64-bit float.
type ValueF64 struct{ Value float64 }

func (ValueF64) valueNode() {}

// ValueText is a text/string value.
type ValueText struct{ Value string }

func (ValueText) valueNode() {}

// ValuePath is a literal path value.
type ValuePath struct{ Value path.Path }

func (ValuePath) valueNode() {}

// ValueVariant is an external-tagged payload: { tag = content }.
type ValueVariant struct {
	Tag     string
	Payload Value
}

func (ValueVariant) valueNode() {}

// ValueArray is an ordered, append-friendly sequence.
type ValueArray struct{ Elements []Value }

func (ValueArray) valueNode() {}

// ValueTuple is a fixed-arity sequence.
type ValueTuple struct{ Elements []Value }

func (ValueTuple) valueNode() {}

// ValueMapEntry is one insertion-ordered entry of a ValueMap.
type ValueMapEntry struct {
	Key   path.ObjectKey
	Value Value
}

// ValueMap is an insertion-ordered mapping. Ident, Value and TupleIndex
// document keys survive projection (a TupleIndex key becomes an integer
// key); meta-extension entries are dropped and extensions never appear as
// entries, per invariant 6.
type ValueMap struct{ Entries []ValueMapEntry }

func (ValueMap) valueNode() {}

// ValueHole is an explicit unfilled placeholder, optionally named.
type ValueHole struct{ Label *string }

func (ValueHole) valueNode() {}

// IsHole reports whether v is a hole, used by the validator's completeness
// check (SPEC_FULL.md §4.4 "is_complete").
func IsHole(v Value) bool {
	_, ok := v.(ValueHole)
	return ok
}
