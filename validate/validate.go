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

// Package validate checks a document against a schema extracted by package
// schema (SPEC_FULL.md §4.4). Validation runs entirely over the projected
// document.Value tree rather than the arena: extensions matter when a
// document is read *as a schema* (package schema), but once a Schema graph
// exists, checking ordinary data against it never needs Node.Extensions —
// only the one pass that looks for stray `$` extensions on the data
// document itself (collectUnknownExtensionWarnings) still walks the arena.
package validate

import (
	"math"
	"reflect"
	"strings"
	"unicode/utf8"

	eureerrors "github.com/eure-lang/eure/errors"
	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/path"
	"github.com/eure-lang/eure/schema"
)

// Validator checks documents against a fixed SchemaDocument.
type Validator struct {
	Schema   *schema.SchemaDocument
	MaxDepth int
}

// New returns a Validator with a sensible default recursion guard
// (SPEC_FULL.md §4.4 "MaxDepthExceeded").
func New(sd *schema.SchemaDocument) *Validator {
	return &Validator{Schema: sd, MaxDepth: 64}
}

// ValidationResult is the outcome of one Validate call.
type ValidationResult struct {
	Errors   eureerrors.List
	Warnings []*ValidationWarning
	complete bool
}

// IsValid reports whether the document satisfies every constraint.
func (r *ValidationResult) IsValid() bool { return len(r.Errors) == 0 }

// IsComplete reports whether the document contains no holes. A document can
// be valid (every filled field matches its schema) while incomplete (some
// field is still an explicit hole) — holes match any schema but are never
// "complete" (SPEC_FULL.md §4.4 "is_complete").
func (r *ValidationResult) IsComplete() bool { return r.complete }

// Validate checks doc's root against v.Schema.Root.
func (v *Validator) Validate(doc *document.Document) *ValidationResult {
	result := &ValidationResult{complete: true}
	root := doc.ToValue(doc.RootId())
	v.validateValue(root, v.Schema.Root, nil, 0, nil, result)
	collectUnknownExtensionWarnings(doc, doc.RootId(), nil, result)
	result.Errors.Sort()
	return result
}

func (v *Validator) validateValue(val document.Value, sch *schema.Schema, at path.Path, depth int, allowedExtra map[string]bool, result *ValidationResult) {
	if sch == nil {
		return
	}
	if depth > v.MaxDepth {
		result.Errors.Add(&ValidationError{Kind: MaxDepthExceeded, At: at})
		return
	}
	if document.IsHole(val) {
		result.complete = false
		return
	}

	switch sch.Kind {
	case schema.KindAny:
		// always satisfied
	case schema.KindReference:
		resolved, ok := v.Schema.Resolve(sch.Reference)
		if !ok {
			result.Errors.Add(&ValidationError{Kind: UndefinedTypeReference, At: at})
			return
		}
		v.validateValue(val, resolved, at, depth+1, allowedExtra, result)
	case schema.KindText:
		v.validateText(val, sch.Text, at, result)
	case schema.KindInteger:
		v.validateInteger(val, sch.Integer, at, result)
	case schema.KindFloat:
		v.validateFloat(val, sch.Float, at, result)
	case schema.KindBoolean:
		if _, ok := val.(document.ValueBool); !ok {
			result.Errors.Add(typeMismatch(at, "boolean"))
		}
	case schema.KindNull:
		if _, ok := val.(document.ValueNull); !ok {
			result.Errors.Add(typeMismatch(at, "null"))
		}
	case schema.KindPath:
		v.validatePath(val, sch.Path, at, result)
	case schema.KindLiteral:
		if !reflect.DeepEqual(val, sch.Literal.Value) {
			result.Errors.Add(&ValidationError{Kind: LiteralMismatch, At: at})
		}
	case schema.KindArray:
		v.validateArray(val, sch.Array, at, depth, result)
	case schema.KindMap:
		v.validateMap(val, sch.Map, at, depth, result)
	case schema.KindTuple:
		v.validateTuple(val, sch.Tuple, at, depth, result)
	case schema.KindRecord:
		v.validateRecord(val, sch.Record, at, depth, allowedExtra, result)
	case schema.KindUnion:
		v.validateUnion(val, sch.Union, at, depth, result)
	}
}

func typeMismatch(at path.Path, expected string) *ValidationError {
	return &ValidationError{Kind: TypeMismatch, At: at, Expected: expected}
}

func (v *Validator) validateText(val document.Value, ts *schema.TextSchema, at path.Path, result *ValidationResult) {
	switch t := val.(type) {
	case document.ValueText:
		if ts != nil && ts.Lang != nil {
			// A language-tagged text schema expects a ValueVariant carrying
			// the locale as its tag (see DESIGN.md "validate"); plain text
			// never satisfies it.
			result.Errors.Add(&ValidationError{Kind: LanguageMismatch, At: at})
			return
		}
		checkTextBounds(t.Value, ts, at, result)
	case document.ValueVariant:
		text, ok := t.Payload.(document.ValueText)
		if !ok {
			result.Errors.Add(typeMismatch(at, "text"))
			return
		}
		if ts != nil && ts.Lang != nil && t.Tag != ts.Lang.String() {
			result.Errors.Add(&ValidationError{Kind: LanguageMismatch, At: at})
			return
		}
		checkTextBounds(text.Value, ts, at, result)
	default:
		result.Errors.Add(typeMismatch(at, "text"))
	}
}

func checkTextBounds(s string, ts *schema.TextSchema, at path.Path, result *ValidationResult) {
	if ts == nil {
		return
	}
	n := utf8.RuneCountInString(s)
	if (ts.MinLength != nil && n < *ts.MinLength) || (ts.MaxLength != nil && n > *ts.MaxLength) {
		result.Errors.Add(&ValidationError{Kind: StringLengthOutOfBounds, At: at})
	}
	if ts.Pattern != nil && !ts.Pattern.MatchString(s) {
		result.Errors.Add(&ValidationError{Kind: PatternMismatch, At: at})
	}
}

func (v *Validator) validateInteger(val document.Value, is *schema.IntegerSchema, at path.Path, result *ValidationResult) {
	iv, ok := val.(document.ValueInteger)
	if !ok {
		result.Errors.Add(typeMismatch(at, "integer"))
		return
	}
	if is == nil {
		return
	}
	if is.Range.Min.Set {
		cmp := iv.Value.Cmp(is.Range.Min.Value)
		if is.Range.Min.Inclusive {
			if cmp < 0 {
				result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
			}
		} else if cmp <= 0 {
			result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
		}
	}
	if is.Range.Max.Set {
		cmp := iv.Value.Cmp(is.Range.Max.Value)
		if is.Range.Max.Inclusive {
			if cmp > 0 {
				result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
			}
		} else if cmp >= 0 {
			result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
		}
	}
	if is.MultipleOf != nil && !bigint.DivisibleBy(iv.Value, *is.MultipleOf) {
		result.Errors.Add(&ValidationError{Kind: NotMultipleOf, At: at})
	}
}

func (v *Validator) validateFloat(val document.Value, fs *schema.FloatSchema, at path.Path, result *ValidationResult) {
	var f float64
	switch t := val.(type) {
	case document.ValueF64:
		f = t.Value
	case document.ValueF32:
		f = float64(t.Value)
	case document.ValueInteger:
		f = t.Value.Float64()
	default:
		result.Errors.Add(typeMismatch(at, "float"))
		return
	}
	if fs == nil {
		return
	}
	if fs.Range.Min.Set {
		if fs.Range.Min.Inclusive {
			if f < fs.Range.Min.Value {
				result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
			}
		} else if f <= fs.Range.Min.Value {
			result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
		}
	}
	if fs.Range.Max.Set {
		if fs.Range.Max.Inclusive {
			if f > fs.Range.Max.Value {
				result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
			}
		} else if f >= fs.Range.Max.Value {
			result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
		}
	}
	if fs.MultipleOf != nil && *fs.MultipleOf != 0 {
		rem := math.Mod(f, *fs.MultipleOf)
		if math.Abs(rem) > 1e-9 && math.Abs(rem-*fs.MultipleOf) > 1e-9 {
			result.Errors.Add(&ValidationError{Kind: NotMultipleOf, At: at})
		}
	}
}

func (v *Validator) validatePath(val document.Value, ps *schema.PathSchema, at path.Path, result *ValidationResult) {
	pv, ok := val.(document.ValuePath)
	if !ok {
		result.Errors.Add(typeMismatch(at, "path"))
		return
	}
	if ps == nil {
		return
	}
	n := len(pv.Value)
	if (ps.MinLength != nil && n < *ps.MinLength) || (ps.MaxLength != nil && n > *ps.MaxLength) {
		result.Errors.Add(&ValidationError{Kind: OutOfRange, At: at})
	}
	if ps.HasStartsWith && !strings.HasPrefix(pv.Value.String(), ps.StartsWith) {
		result.Errors.Add(&ValidationError{Kind: PatternMismatch, At: at})
	}
}

func (v *Validator) validateArray(val document.Value, as *schema.ArraySchema, at path.Path, depth int, result *ValidationResult) {
	av, ok := val.(document.ValueArray)
	if !ok {
		result.Errors.Add(typeMismatch(at, "array"))
		return
	}
	n := len(av.Elements)
	if (as.MinLength != nil && n < *as.MinLength) || (as.MaxLength != nil && n > *as.MaxLength) {
		result.Errors.Add(&ValidationError{Kind: ArrayLengthOutOfBounds, At: at})
	}
	for i, el := range av.Elements {
		if as.Item != nil {
			v.validateValue(el, as.Item, appendIndex(at, i), depth+1, nil, result)
		}
	}
	if as.Unique && hasDuplicate(av.Elements) {
		result.Errors.Add(&ValidationError{Kind: ArrayNotUnique, At: at})
	}
	if as.Contains != nil {
		found := false
		for i, el := range av.Elements {
			sub := &ValidationResult{complete: true}
			v.validateValue(el, as.Contains, appendIndex(at, i), depth+1, nil, sub)
			if len(sub.Errors) == 0 {
				found = true
				break
			}
		}
		if !found {
			result.Errors.Add(&ValidationError{Kind: ArrayMissingContains, At: at})
		}
	}
}

func hasDuplicate(elements []document.Value) bool {
	for i := 0; i < len(elements); i++ {
		for j := i + 1; j < len(elements); j++ {
			if reflect.DeepEqual(elements[i], elements[j]) {
				return true
			}
		}
	}
	return false
}

func (v *Validator) validateMap(val document.Value, ms *schema.MapSchema, at path.Path, depth int, result *ValidationResult) {
	mv, ok := val.(document.ValueMap)
	if !ok {
		result.Errors.Add(typeMismatch(at, "map"))
		return
	}
	n := len(mv.Entries)
	if (ms.MinSize != nil && n < *ms.MinSize) || (ms.MaxSize != nil && n > *ms.MaxSize) {
		result.Errors.Add(&ValidationError{Kind: MapSizeOutOfBounds, At: at})
	}
	for _, e := range mv.Entries {
		if ms.Key != nil && !keyMatchesSchema(e.Key, ms.Key) {
			result.Errors.Add(&ValidationError{Kind: InvalidKeyType, At: at, Expected: schemaKindName(ms.Key.Kind)})
		}
		if ms.Value != nil {
			v.validateValue(e.Value, ms.Value, at.Append(path.Value(e.Key)), depth+1, nil, result)
		}
	}
}

func keyMatchesSchema(key path.ObjectKey, ks *schema.Schema) bool {
	switch ks.Kind {
	case schema.KindText:
		return key.IsString()
	case schema.KindInteger:
		return key.IsInt()
	case schema.KindAny:
		return true
	default:
		return false
	}
}

func schemaKindName(k schema.Kind) string {
	switch k {
	case schema.KindText:
		return "text"
	case schema.KindInteger:
		return "integer"
	case schema.KindFloat:
		return "float"
	case schema.KindBoolean:
		return "boolean"
	case schema.KindNull:
		return "null"
	case schema.KindAny:
		return "any"
	default:
		return "unknown"
	}
}

func (v *Validator) validateTuple(val document.Value, ts *schema.TupleSchema, at path.Path, depth int, result *ValidationResult) {
	tv, ok := val.(document.ValueTuple)
	if !ok {
		result.Errors.Add(typeMismatch(at, "tuple"))
		return
	}
	if len(tv.Elements) != len(ts.Elements) {
		result.Errors.Add(&ValidationError{Kind: TupleLengthMismatch, At: at})
		return
	}
	for i, elemSchema := range ts.Elements {
		v.validateValue(tv.Elements[i], elemSchema, appendIndex(at, i), depth+1, nil, result)
	}
}

func (v *Validator) validateRecord(val document.Value, rs *schema.RecordSchema, at path.Path, depth int, allowedExtra map[string]bool, result *ValidationResult) {
	mv, ok := val.(document.ValueMap)
	if !ok {
		result.Errors.Add(typeMismatch(at, "record"))
		return
	}
	present := make(map[string]document.Value, len(mv.Entries))
	for _, e := range mv.Entries {
		if e.Key.IsString() {
			present[e.Key.String()] = e.Value
		}
	}

	fieldNames := make(map[string]bool, len(rs.Fields))
	for _, f := range rs.Fields {
		fieldNames[f.Name] = true
		pv, has := present[f.Name]
		if !has {
			if !f.Optional {
				result.Errors.Add(&ValidationError{Kind: MissingRequiredField, At: at, Field: f.Name})
			}
			continue
		}
		if f.Deprecated {
			result.Warnings = append(result.Warnings, &ValidationWarning{Kind: DeprecatedField, At: at, Field: f.Name})
		}
		v.validateValue(pv, f.Schema, at.Append(path.Ident(f.Name)), depth+1, nil, result)
	}

	for name, pv := range present {
		if fieldNames[name] || (allowedExtra != nil && allowedExtra[name]) {
			continue
		}
		switch rs.UnknownFields.Kind {
		case schema.UnknownFieldsDeny:
			result.Errors.Add(&ValidationError{Kind: UnknownField, At: at, Field: name})
		case schema.UnknownFieldsAllow:
			// permitted, untyped
		case schema.UnknownFieldsTyped:
			v.validateValue(pv, rs.UnknownFields.Schema, at.Append(path.Ident(name)), depth+1, nil, result)
		}
	}
}

func (v *Validator) validateUnion(val document.Value, us *schema.UnionSchema, at path.Path, depth int, result *ValidationResult) {
	switch us.Repr.Kind {
	case schema.ReprExternal:
		v.validateExternalUnion(val, us, at, depth, result)
	case schema.ReprUntagged:
		v.validateUntaggedUnion(val, us, at, depth, result)
	case schema.ReprInternal:
		v.validateInternalUnion(val, us, at, depth, result)
	case schema.ReprAdjacent:
		v.validateAdjacentUnion(val, us, at, depth, result)
	}
}

func findVariant(variants []schema.UnionVariant, name string) *schema.UnionVariant {
	for i := range variants {
		if variants[i].Name == name {
			return &variants[i]
		}
	}
	return nil
}

func lookupMapEntry(mv document.ValueMap, name string) (document.Value, bool) {
	for _, e := range mv.Entries {
		if e.Key.IsString() && e.Key.String() == name {
			return e.Value, true
		}
	}
	return nil, false
}

func (v *Validator) validateExternalUnion(val document.Value, us *schema.UnionSchema, at path.Path, depth int, result *ValidationResult) {
	switch t := val.(type) {
	case document.ValueVariant:
		variant := findVariant(us.Variants, t.Tag)
		if variant == nil {
			result.Errors.Add(&ValidationError{Kind: InvalidVariantTag, At: at, Tag: t.Tag})
			return
		}
		v.validateValue(t.Payload, variant.Schema, at.Append(path.Ident(t.Tag)), depth+1, nil, result)
	case document.ValueMap:
		if len(t.Entries) != 1 || !t.Entries[0].Key.IsString() {
			result.Errors.Add(typeMismatch(at, "externally tagged union (single-field map)"))
			return
		}
		e := t.Entries[0]
		variant := findVariant(us.Variants, e.Key.String())
		if variant == nil {
			result.Errors.Add(&ValidationError{Kind: InvalidVariantTag, At: at, Tag: e.Key.String()})
			return
		}
		v.validateValue(e.Value, variant.Schema, at.Append(path.Ident(e.Key.String())), depth+1, nil, result)
	default:
		result.Errors.Add(typeMismatch(at, "externally tagged union"))
	}
}

// validateUntaggedUnion tries each variant in Priority order (or declaration
// order if unset) and requires exactly one to match when no priority list
// disambiguates ties (SPEC_FULL.md §4.4 "untagged" representation).
func (v *Validator) validateUntaggedUnion(val document.Value, us *schema.UnionSchema, at path.Path, depth int, result *ValidationResult) {
	order := us.Priority
	if len(order) == 0 {
		for _, uv := range us.Variants {
			order = append(order, uv.Name)
		}
	}

	var matched []string
	variantErrs := map[string][]*ValidationError{}
	for _, name := range order {
		variant := findVariant(us.Variants, name)
		if variant == nil {
			continue
		}
		sub := &ValidationResult{complete: true}
		v.validateValue(val, variant.Schema, at, depth+1, nil, sub)
		variantErrs[name] = toValidationErrors(sub.Errors)
		if len(sub.Errors) == 0 {
			matched = append(matched, name)
		}
	}

	if len(matched) == 0 {
		result.Errors.Add(&ValidationError{Kind: NoVariantMatched, At: at, VariantErrors: variantErrs})
		return
	}
	if len(us.Priority) == 0 && len(matched) > 1 {
		result.Errors.Add(&ValidationError{Kind: AmbiguousUnion, At: at, Variants: matched})
	}
}

func toValidationErrors(l eureerrors.List) []*ValidationError {
	out := make([]*ValidationError, 0, len(l))
	for _, e := range l {
		if ve, ok := e.(*ValidationError); ok {
			out = append(out, ve)
		}
	}
	return out
}

func (v *Validator) validateInternalUnion(val document.Value, us *schema.UnionSchema, at path.Path, depth int, result *ValidationResult) {
	mv, ok := val.(document.ValueMap)
	if !ok {
		result.Errors.Add(typeMismatch(at, "internally tagged union (map)"))
		return
	}
	tagVal, found := lookupMapEntry(mv, us.Repr.Tag)
	if !found {
		result.Errors.Add(&ValidationError{Kind: MissingRequiredField, At: at, Field: us.Repr.Tag})
		return
	}
	tagText, ok := tagVal.(document.ValueText)
	if !ok {
		result.Errors.Add(&ValidationError{Kind: InvalidVariantTag, At: at})
		return
	}
	variant := findVariant(us.Variants, tagText.Value)
	if variant == nil {
		result.Errors.Add(&ValidationError{Kind: InvalidVariantTag, At: at, Tag: tagText.Value})
		return
	}
	v.validateValue(mv, variant.Schema, at, depth+1, map[string]bool{us.Repr.Tag: true}, result)
}

func (v *Validator) validateAdjacentUnion(val document.Value, us *schema.UnionSchema, at path.Path, depth int, result *ValidationResult) {
	mv, ok := val.(document.ValueMap)
	if !ok {
		result.Errors.Add(typeMismatch(at, "adjacently tagged union (map)"))
		return
	}
	tagVal, found := lookupMapEntry(mv, us.Repr.Tag)
	if !found {
		result.Errors.Add(&ValidationError{Kind: MissingRequiredField, At: at, Field: us.Repr.Tag})
		return
	}
	tagText, ok := tagVal.(document.ValueText)
	if !ok {
		result.Errors.Add(&ValidationError{Kind: InvalidVariantTag, At: at})
		return
	}
	variant := findVariant(us.Variants, tagText.Value)
	if variant == nil {
		result.Errors.Add(&ValidationError{Kind: InvalidVariantTag, At: at, Tag: tagText.Value})
		return
	}
	contentVal, found := lookupMapEntry(mv, us.Repr.Content)
	if !found {
		result.Errors.Add(&ValidationError{Kind: MissingRequiredField, At: at, Field: us.Repr.Content})
		return
	}
	v.validateValue(contentVal, variant.Schema, at.Append(path.Ident(us.Repr.Content)), depth+1, nil, result)
}

func appendIndex(p path.Path, i int) path.Path {
	if len(p) == 0 {
		return path.Path{{Array: path.Array{Present: true, HasIndex: true, Index: i}}}
	}
	out := make(path.Path, len(p))
	copy(out, p)
	out[len(out)-1].Array = path.Array{Present: true, HasIndex: true, Index: i}
	return out
}

// knownExtensions lists the structural extensions this module understands
// at the schema level (package schema's extract.go); anything else found on
// a document being validated is surfaced as an UnknownExtension warning.
var knownExtensions = map[string]bool{
	"variant": true, "variant-repr": true, "unknown-fields": true,
	"optional": true, "deprecated": true, "description": true,
	"default": true, "types": true,
}

func collectUnknownExtensionWarnings(doc *document.Document, id document.NodeId, at path.Path, result *ValidationResult) {
	n := doc.Node(id)
	for name := range n.Extensions {
		if !knownExtensions[name] {
			result.Warnings = append(result.Warnings, &ValidationWarning{Kind: UnknownExtension, At: at, Extension: name})
		}
	}
	switch c := n.Content.(type) {
	case *document.Map:
		for _, e := range c.Entries() {
			var childAt path.Path
			switch e.Key.Kind {
			case document.KeyIdent:
				childAt = at.Append(path.Ident(e.Key.Ident))
			case document.KeyValue:
				childAt = at.Append(path.Value(e.Key.Value))
			case document.KeyTupleIndex:
				childAt = at.Append(path.TupleIndex(e.Key.Tuple))
			default:
				childAt = at
			}
			collectUnknownExtensionWarnings(doc, e.Id, childAt, result)
		}
	case *document.Array:
		for i, el := range c.Elements {
			collectUnknownExtensionWarnings(doc, el, appendIndex(at, i), result)
		}
	case *document.Tuple:
		for i, el := range c.Elements {
			collectUnknownExtensionWarnings(doc, el, at.Append(path.TupleIndex(i)), result)
		}
	}
}
