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

// Package schema extracts a schema graph from a document whose shape *is*
// a schema (SPEC_FULL.md §4.3): the surface syntax for schemas is the same
// as for data, so a schema author writes a normal EURE document and this
// package reads it back as constraints rather than values.
package schema

import (
	"regexp"

	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/internal/document"
	"golang.org/x/text/language"
)

// Kind discriminates the variant of a Schema.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindNull
	KindAny
	KindPath
	KindArray
	KindMap
	KindTuple
	KindUnion
	KindLiteral
	KindRecord
	KindReference
)

// IntBound is one side of an IntRange; Set reports whether the bound is
// present at all (an absent bound is unbounded on that side).
type IntBound struct {
	Value     bigint.Int
	Set       bool
	Inclusive bool
}

// IntRange is an integer schema's `range` constraint.
type IntRange struct {
	Min IntBound
	Max IntBound
}

// FloatBound is one side of a FloatRange.
type FloatBound struct {
	Value     float64
	Set       bool
	Inclusive bool
}

// FloatRange is a float schema's `range` constraint.
type FloatRange struct {
	Min FloatBound
	Max FloatBound
}

// TextSchema constrains a text value (SPEC_FULL.md §4.3 "text" fields).
type TextSchema struct {
	Lang       *language.Tag
	MinLength  *int
	MaxLength  *int
	Pattern    *regexp.Regexp
	PatternSrc string
}

// IntegerSchema constrains an integer value.
type IntegerSchema struct {
	Range      IntRange
	MultipleOf *bigint.Int
}

// FloatSchema constrains a float value.
type FloatSchema struct {
	Range      FloatRange
	MultipleOf *float64
}

// ArraySchema constrains an array value.
type ArraySchema struct {
	Item      *Schema
	MinLength *int
	MaxLength *int
	Unique    bool
	Contains  *Schema
}

// MapSchema constrains a map value.
type MapSchema struct {
	Key     *Schema
	Value   *Schema
	MinSize *int
	MaxSize *int
}

// TupleSchema constrains a fixed-arity tuple value.
type TupleSchema struct {
	Elements []*Schema
}

// VariantReprKind discriminates a union's tagging strategy.
type VariantReprKind int

const (
	// ReprExternal is the default: { variant = content }.
	ReprExternal VariantReprKind = iota
	// ReprUntagged: no tag; the value must match exactly one variant, unless
	// a Priority list is set, in which case any number of matches is accepted.
	ReprUntagged
	// ReprInternal: a tag field inside the map names the variant.
	ReprInternal
	// ReprAdjacent: tag and content live in named sibling fields.
	ReprAdjacent
)

// VariantRepr is a union schema's `$variant-repr` value.
type VariantRepr struct {
	Kind    VariantReprKind
	Tag     string // ReprInternal, ReprAdjacent
	Content string // ReprAdjacent
}

// UnionVariant is one named arm of a union schema.
type UnionVariant struct {
	Name   string
	Schema *Schema
}

// UnionSchema constrains a tagged or untagged union value.
type UnionSchema struct {
	Variants []UnionVariant
	Priority []string
	Repr     VariantRepr
}

// PathSchema constrains a path-literal value.
type PathSchema struct {
	StartsWith    string
	HasStartsWith bool
	MinLength     *int
	MaxLength     *int
}

// LiteralSchema requires exact structural equality to Value.
type LiteralSchema struct {
	Value document.Value
}

// RecordField is one field of a RecordSchema.
type RecordField struct {
	Name        string
	Schema      *Schema
	Optional    bool
	Description string
	Deprecated  bool
	Default     document.Value
	HasDefault  bool
}

// UnknownFieldsKind discriminates a record's `$unknown-fields` policy.
type UnknownFieldsKind int

const (
	UnknownFieldsDeny UnknownFieldsKind = iota
	UnknownFieldsAllow
	UnknownFieldsTyped
)

// UnknownFieldsPolicy is a record schema's policy for fields not named in
// Fields.
type UnknownFieldsPolicy struct {
	Kind   UnknownFieldsKind
	Schema *Schema // valid for UnknownFieldsTyped
}

// RecordSchema constrains a record (a map whose keys are known field names).
type RecordSchema struct {
	Fields        []RecordField
	UnknownFields UnknownFieldsPolicy
}

// ReferenceSchema is a `.$types.<name>` or `.$types.<ns>.<name>` lookup,
// resolved against SchemaDocument's type table.
type ReferenceSchema struct {
	Namespace string // empty for an unnamespaced reference
	Name      string
}

// Schema is one node of the extracted schema graph. At most one of the
// kind-specific fields is non-nil, the one matching Kind; KindBoolean,
// KindNull and KindAny have no kind-specific field.
type Schema struct {
	Kind Kind

	Text      *TextSchema
	Integer   *IntegerSchema
	Float     *FloatSchema
	Array     *ArraySchema
	Map       *MapSchema
	Tuple     *TupleSchema
	Union     *UnionSchema
	Path      *PathSchema
	Literal   *LiteralSchema
	Record    *RecordSchema
	Reference *ReferenceSchema
}

// SchemaDocument is the result of extraction: a root schema plus the type
// table harvested from the root node's `$types` extension.
type SchemaDocument struct {
	Root  *Schema
	Types map[string]*Schema
}

// Resolve looks up a `$types` reference by the dotted key convention used
// by this package's extractor (see DESIGN.md "schema" for the namespacing
// design decision): an unnamespaced reference looks up Name; a namespaced
// one looks up "Namespace.Name".
func (sd *SchemaDocument) Resolve(ref *ReferenceSchema) (*Schema, bool) {
	key := ref.Name
	if ref.Namespace != "" {
		key = ref.Namespace + "." + ref.Name
	}
	s, ok := sd.Types[key]
	return s, ok
}
