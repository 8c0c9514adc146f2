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
	"regexp"
	"strconv"
	"strings"

	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/path"
	"golang.org/x/text/language"
)

// DocumentToSchema extracts a SchemaDocument from doc: the root node's shape
// is read back as a constraint graph rather than a value (SPEC_FULL.md §4.3),
// and every node reachable under the root's `$types` extension is harvested
// into the type table for `$types` reference resolution.
func DocumentToSchema(doc *document.Document) (*SchemaDocument, error) {
	types, err := harvestTypes(doc, doc.RootId())
	if err != nil {
		return nil, err
	}
	root, err := extractSchema(doc, doc.RootId(), nil)
	if err != nil {
		return nil, err
	}
	return &SchemaDocument{Root: root, Types: types}, nil
}

// harvestTypes walks the root's `$types` extension and registers every
// reachable node at its own dotted-prefix key ("ns.Name"), without ever
// deciding ahead of time whether a map node "is" a namespace or "is" a leaf
// schema — a plain record and a namespace are structurally indistinguishable
// in the grammar (see DESIGN.md "schema"). A node that fails extraction
// (e.g. it's genuinely just a namespace grouping, not a valid schema on its
// own) is simply not registered under its own key; its children are still
// visited.
func harvestTypes(doc *document.Document, rootId document.NodeId) (map[string]*Schema, error) {
	out := map[string]*Schema{}
	typesId, ok := doc.Node(rootId).GetExtension("types")
	if !ok {
		return out, nil
	}
	if err := harvestTypesRecursive(doc, typesId, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func harvestTypesRecursive(doc *document.Document, id document.NodeId, prefix []string, out map[string]*Schema) error {
	if len(prefix) > 0 {
		key := strings.Join(prefix, ".")
		if s, err := extractSchema(doc, id, nil); err == nil {
			out[key] = s
		}
	}

	n := doc.Node(id)
	m, ok := n.Content.(*document.Map)
	if !ok {
		return nil
	}
	if _, hasVariant := n.GetExtension("variant"); hasVariant {
		return nil
	}
	for _, e := range m.Entries() {
		if e.Key.Kind != document.KeyIdent {
			continue
		}
		child := append(append([]string{}, prefix...), e.Key.Ident)
		if err := harvestTypesRecursive(doc, e.Id, child, out); err != nil {
			return err
		}
	}
	return nil
}

// extractSchema dispatches on id's arena content to build one Schema node.
func extractSchema(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	n := doc.Node(id)
	switch c := n.Content.(type) {
	case document.Uninitialized:
		return nil, &ConversionError{Kind: EmptyTypePath, At: at}
	case document.Primitive:
		if p, ok := c.Value.(document.PrimPath); ok {
			return schemaFromPathShorthand(p.Value, at)
		}
		return &Schema{Kind: KindLiteral, Literal: &LiteralSchema{Value: doc.ToValue(id)}}, nil
	case *document.Array:
		if len(c.Elements) == 1 {
			item, err := extractSchema(doc, c.Elements[0], at)
			if err != nil {
				return nil, err
			}
			return &Schema{Kind: KindArray, Array: &ArraySchema{Item: item}}, nil
		}
		return &Schema{Kind: KindLiteral, Literal: &LiteralSchema{Value: doc.ToValue(id)}}, nil
	case *document.Tuple:
		elems := make([]*Schema, len(c.Elements))
		for i, el := range c.Elements {
			s, err := extractSchema(doc, el, at)
			if err != nil {
				return nil, err
			}
			elems[i] = s
		}
		return &Schema{Kind: KindTuple, Tuple: &TupleSchema{Elements: elems}}, nil
	case *document.Map:
		if variantId, ok := n.GetExtension("variant"); ok {
			kindName, err := identOrTextValue(doc, variantId, at, "variant")
			if err != nil {
				return nil, err
			}
			return extractVariantForm(doc, id, kindName, at)
		}
		return extractRecord(doc, id, at)
	case *document.Hole:
		return nil, &ConversionError{Kind: UnsupportedConstruct, At: at, Msg: "a hole cannot appear in schema position"}
	}
	return nil, &ConversionError{Kind: UnsupportedConstruct, At: at, Msg: "unrecognized node content"}
}

func identOrTextValue(doc *document.Document, id document.NodeId, at path.Path, extension string) (string, error) {
	switch v := doc.ToValue(id).(type) {
	case document.ValueText:
		return v.Value, nil
	case document.ValuePath:
		if len(v.Value) == 1 && v.Value[0].Kind == path.KindIdent {
			return v.Value[0].Ident, nil
		}
	}
	return "", &ConversionError{Kind: InvalidExtensionValue, At: at, Extension: extension}
}

// schemaFromPathShorthand resolves a primitive/reference shorthand path such
// as `.text`, `.text.en`, `.integer`, `.{$types}.Name` or
// `.{$types}.ns.Name` (SPEC_FULL.md §4.3 "primitive shorthand paths").
func schemaFromPathShorthand(p path.Path, at path.Path) (*Schema, error) {
	if len(p) == 0 {
		return nil, &ConversionError{Kind: EmptyTypePath, At: at}
	}
	first := p[0]
	switch first.Kind {
	case path.KindExtension:
		if first.Ident != "types" {
			return nil, &ConversionError{Kind: UnknownExtensionPath, At: at}
		}
		return referenceFromTypesPath(p[1:], at)
	case path.KindIdent:
		switch first.Ident {
		case "text":
			ts := &TextSchema{}
			if len(p) > 1 {
				if p[1].Kind != path.KindIdent {
					return nil, &ConversionError{Kind: InvalidTypePath, At: at}
				}
				tag, err := language.Parse(p[1].Ident)
				if err != nil {
					return nil, &ConversionError{Kind: InvalidTypeName, At: at, Value: p[1].Ident}
				}
				ts.Lang = &tag
			}
			return &Schema{Kind: KindText, Text: ts}, nil
		case "integer":
			return &Schema{Kind: KindInteger, Integer: &IntegerSchema{}}, nil
		case "float":
			return &Schema{Kind: KindFloat, Float: &FloatSchema{}}, nil
		case "boolean":
			return &Schema{Kind: KindBoolean}, nil
		case "null":
			return &Schema{Kind: KindNull}, nil
		case "any":
			return &Schema{Kind: KindAny}, nil
		case "path":
			return &Schema{Kind: KindPath, Path: &PathSchema{}}, nil
		default:
			return nil, &ConversionError{Kind: UnknownPrimitiveType, At: at}
		}
	default:
		return nil, &ConversionError{Kind: InvalidTypePath, At: at}
	}
}

func referenceFromTypesPath(rest path.Path, at path.Path) (*Schema, error) {
	switch len(rest) {
	case 1:
		if rest[0].Kind != path.KindIdent {
			return nil, &ConversionError{Kind: InvalidTypePath, At: at}
		}
		return &Schema{Kind: KindReference, Reference: &ReferenceSchema{Name: rest[0].Ident}}, nil
	case 2:
		if rest[0].Kind != path.KindIdent || rest[1].Kind != path.KindIdent {
			return nil, &ConversionError{Kind: InvalidTypePath, At: at}
		}
		return &Schema{Kind: KindReference, Reference: &ReferenceSchema{Namespace: rest[0].Ident, Name: rest[1].Ident}}, nil
	default:
		return nil, &ConversionError{Kind: InvalidTypePath, At: at}
	}
}

// extractVariantForm dispatches an explicit `$variant`-tagged constraint map
// to its kind-specific extractor (SPEC_FULL.md §4.3 "explicit constraint
// forms"), following the constraint-dispatch-table idiom of
// encoding/jsonschema/constraints.go, adapted to a plain switch since each
// form's field set differs enough that a shared table buys little here.
func extractVariantForm(doc *document.Document, id document.NodeId, kindName string, at path.Path) (*Schema, error) {
	switch kindName {
	case "text":
		return extractTextVariant(doc, id, at)
	case "integer":
		return extractIntegerVariant(doc, id, at)
	case "float":
		return extractFloatVariant(doc, id, at)
	case "array":
		return extractArrayVariant(doc, id, at)
	case "map":
		return extractMapVariant(doc, id, at)
	case "tuple":
		return extractTupleVariant(doc, id, at)
	case "union":
		return extractUnionVariantForm(doc, id, at)
	case "path":
		return extractPathVariant(doc, id, at)
	case "literal":
		return extractLiteralVariant(doc, id, at)
	case "record":
		return extractRecord(doc, id, at)
	default:
		return nil, &ConversionError{Kind: InvalidTypeName, At: at, Value: kindName}
	}
}

func extractTextVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	ts := &TextSchema{}
	langStr, ok, err := getStringField(doc, id, "language", at)
	if err != nil {
		return nil, err
	}
	if ok {
		tag, perr := language.Parse(langStr)
		if perr != nil {
			return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: "language", Value: langStr}
		}
		ts.Lang = &tag
	}
	if ts.MinLength, _, err = getIntFieldPtr(doc, id, "min-length", at); err != nil {
		return nil, err
	}
	if ts.MaxLength, _, err = getIntFieldPtr(doc, id, "max-length", at); err != nil {
		return nil, err
	}
	patternSrc, ok, err := getStringField(doc, id, "pattern", at)
	if err != nil {
		return nil, err
	}
	if ok {
		re, cerr := regexp.Compile(patternSrc)
		if cerr != nil {
			return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: "pattern", Value: patternSrc}
		}
		ts.Pattern = re
		ts.PatternSrc = patternSrc
	}
	return &Schema{Kind: KindText, Text: ts}, nil
}

func extractIntegerVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	rng, _, err := getIntRangeField(doc, id, "range", at)
	if err != nil {
		return nil, err
	}
	multipleOf, err := getBigIntField(doc, id, "multiple-of", at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindInteger, Integer: &IntegerSchema{Range: rng, MultipleOf: multipleOf}}, nil
}

func extractFloatVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	rng, _, err := getFloatRangeField(doc, id, "range", at)
	if err != nil {
		return nil, err
	}
	multipleOf, err := getFloatField(doc, id, "multiple-of", at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindFloat, Float: &FloatSchema{Range: rng, MultipleOf: multipleOf}}, nil
}

func extractArrayVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	item, err := getOptionalSchemaField(doc, id, "item", at)
	if err != nil {
		return nil, err
	}
	minLen, _, err := getIntFieldPtr(doc, id, "min-length", at)
	if err != nil {
		return nil, err
	}
	maxLen, _, err := getIntFieldPtr(doc, id, "max-length", at)
	if err != nil {
		return nil, err
	}
	unique, _, err := getBoolField(doc, id, "unique", at)
	if err != nil {
		return nil, err
	}
	contains, err := getOptionalSchemaField(doc, id, "contains", at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindArray, Array: &ArraySchema{
		Item: item, MinLength: minLen, MaxLength: maxLen, Unique: unique, Contains: contains,
	}}, nil
}

func extractMapVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	key, err := getOptionalSchemaField(doc, id, "key", at)
	if err != nil {
		return nil, err
	}
	value, err := getOptionalSchemaField(doc, id, "value", at)
	if err != nil {
		return nil, err
	}
	minSize, _, err := getIntFieldPtr(doc, id, "min-size", at)
	if err != nil {
		return nil, err
	}
	maxSize, _, err := getIntFieldPtr(doc, id, "max-size", at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindMap, Map: &MapSchema{Key: key, Value: value, MinSize: minSize, MaxSize: maxSize}}, nil
}

func extractTupleVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	childId, ok := getChildByIdent(doc, id, "elements")
	if !ok {
		return nil, &ConversionError{Kind: MissingRequiredExtension, At: at, Extension: "elements"}
	}
	var elemIds []document.NodeId
	switch c := doc.Node(childId).Content.(type) {
	case *document.Array:
		elemIds = c.Elements
	case *document.Tuple:
		elemIds = c.Elements
	default:
		return nil, &ConversionError{Kind: UnsupportedConstruct, At: at, Msg: "elements must be an array or tuple"}
	}
	elems := make([]*Schema, len(elemIds))
	for i, eid := range elemIds {
		s, err := extractSchema(doc, eid, at)
		if err != nil {
			return nil, err
		}
		elems[i] = s
	}
	return &Schema{Kind: KindTuple, Tuple: &TupleSchema{Elements: elems}}, nil
}

func extractUnionVariantForm(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	variants, err := extractUnionVariants(doc, id, at)
	if err != nil {
		return nil, err
	}
	priority, err := extractPriority(doc, id, at)
	if err != nil {
		return nil, err
	}
	repr, err := extractVariantRepr(doc, id, at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindUnion, Union: &UnionSchema{Variants: variants, Priority: priority, Repr: repr}}, nil
}

func extractUnionVariants(doc *document.Document, id document.NodeId, at path.Path) ([]UnionVariant, error) {
	childId, ok := getChildByIdent(doc, id, "variants")
	if !ok {
		return nil, &ConversionError{Kind: MissingRequiredExtension, At: at, Extension: "variants"}
	}
	m, ok := doc.Node(childId).Content.(*document.Map)
	if !ok {
		return nil, &ConversionError{Kind: UnsupportedConstruct, At: at, Msg: "variants must be a record"}
	}
	var out []UnionVariant
	for _, e := range m.Entries() {
		if e.Key.Kind != document.KeyIdent {
			continue
		}
		s, err := extractSchema(doc, e.Id, at)
		if err != nil {
			return nil, err
		}
		out = append(out, UnionVariant{Name: e.Key.Ident, Schema: s})
	}
	return out, nil
}

func extractPriority(doc *document.Document, id document.NodeId, at path.Path) ([]string, error) {
	childId, ok := getChildByIdent(doc, id, "priority")
	if !ok {
		return nil, nil
	}
	var elems []document.Value
	switch v := doc.ToValue(childId).(type) {
	case document.ValueArray:
		elems = v.Elements
	case document.ValueTuple:
		elems = v.Elements
	default:
		return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: "priority"}
	}
	out := make([]string, 0, len(elems))
	for _, el := range elems {
		t, ok := el.(document.ValueText)
		if !ok {
			return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: "priority"}
		}
		out = append(out, t.Value)
	}
	return out, nil
}

// extractVariantRepr reads the `$variant-repr` extension, defaulting to
// external tagging when absent (SPEC_FULL.md §4.4 "four union-variant
// representations").
func extractVariantRepr(doc *document.Document, id document.NodeId, at path.Path) (VariantRepr, error) {
	reprId, ok := doc.Node(id).GetExtension("variant-repr")
	if !ok {
		return VariantRepr{Kind: ReprExternal}, nil
	}
	switch v := doc.ToValue(reprId).(type) {
	case document.ValueText:
		switch v.Value {
		case "external":
			return VariantRepr{Kind: ReprExternal}, nil
		case "untagged":
			return VariantRepr{Kind: ReprUntagged}, nil
		default:
			return VariantRepr{}, &ConversionError{Kind: InvalidExtensionValue, At: at, Extension: "variant-repr"}
		}
	case document.ValueMap:
		var kindName, tag, content string
		for _, e := range v.Entries {
			if !e.Key.IsString() {
				continue
			}
			s, ok := e.Value.(document.ValueText)
			if !ok {
				continue
			}
			switch e.Key.String() {
			case "kind":
				kindName = s.Value
			case "tag":
				tag = s.Value
			case "content":
				content = s.Value
			}
		}
		switch kindName {
		case "internal":
			if tag == "" {
				return VariantRepr{}, &ConversionError{Kind: MissingRequiredExtension, At: at, Extension: "tag"}
			}
			return VariantRepr{Kind: ReprInternal, Tag: tag}, nil
		case "adjacent":
			if tag == "" || content == "" {
				return VariantRepr{}, &ConversionError{Kind: MissingRequiredExtension, At: at, Extension: "tag/content"}
			}
			return VariantRepr{Kind: ReprAdjacent, Tag: tag, Content: content}, nil
		default:
			return VariantRepr{}, &ConversionError{Kind: InvalidExtensionValue, At: at, Extension: "variant-repr"}
		}
	default:
		return VariantRepr{}, &ConversionError{Kind: InvalidExtensionValue, At: at, Extension: "variant-repr"}
	}
}

func extractPathVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	startsWith, hasStarts, err := getStringField(doc, id, "starts-with", at)
	if err != nil {
		return nil, err
	}
	minLen, _, err := getIntFieldPtr(doc, id, "min-length", at)
	if err != nil {
		return nil, err
	}
	maxLen, _, err := getIntFieldPtr(doc, id, "max-length", at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindPath, Path: &PathSchema{
		StartsWith: startsWith, HasStartsWith: hasStarts, MinLength: minLen, MaxLength: maxLen,
	}}, nil
}

func extractLiteralVariant(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	childId, ok := getChildByIdent(doc, id, "value")
	if !ok {
		return nil, &ConversionError{Kind: MissingRequiredExtension, At: at, Extension: "value"}
	}
	return &Schema{Kind: KindLiteral, Literal: &LiteralSchema{Value: doc.ToValue(childId)}}, nil
}

// extractRecord treats a `$variant`-free map as a record: every Ident entry
// becomes a field, `$optional`/`$deprecated`/`$description`/`$default`
// extensions on the field's own node carry per-field metadata, and
// `$unknown-fields` on the record node itself sets the unmatched-field
// policy (SPEC_FULL.md §4.3 "records").
func extractRecord(doc *document.Document, id document.NodeId, at path.Path) (*Schema, error) {
	m, ok := doc.Node(id).Content.(*document.Map)
	if !ok {
		return nil, &ConversionError{Kind: UnsupportedConstruct, At: at, Msg: "record must be a map"}
	}
	fields := make([]RecordField, 0, m.Len())
	for _, e := range m.Entries() {
		if e.Key.Kind != document.KeyIdent {
			continue
		}
		fieldAt := at.Append(path.Ident(e.Key.Ident))
		fieldSchema, err := extractSchema(doc, e.Id, fieldAt)
		if err != nil {
			return nil, err
		}
		fn := doc.Node(e.Id)
		field := RecordField{
			Name:        e.Key.Ident,
			Schema:      fieldSchema,
			Optional:    getBoolFieldFromExt(doc, fn, "optional"),
			Description: getStringFieldFromExt(doc, fn, "description"),
			Deprecated:  getBoolFieldFromExt(doc, fn, "deprecated"),
		}
		if defId, ok := fn.GetExtension("default"); ok {
			field.Default = doc.ToValue(defId)
			field.HasDefault = true
		}
		fields = append(fields, field)
	}
	policy, err := extractUnknownFieldsPolicy(doc, id, at)
	if err != nil {
		return nil, err
	}
	return &Schema{Kind: KindRecord, Record: &RecordSchema{Fields: fields, UnknownFields: policy}}, nil
}

// extractUnknownFieldsPolicy defaults to deny when `$unknown-fields` is
// absent (an Open Question resolution recorded in DESIGN.md "schema": a
// record schema describes a closed shape unless told otherwise).
func extractUnknownFieldsPolicy(doc *document.Document, id document.NodeId, at path.Path) (UnknownFieldsPolicy, error) {
	extId, ok := doc.Node(id).GetExtension("unknown-fields")
	if !ok {
		return UnknownFieldsPolicy{Kind: UnknownFieldsDeny}, nil
	}
	if t, ok := doc.ToValue(extId).(document.ValueText); ok {
		switch t.Value {
		case "deny":
			return UnknownFieldsPolicy{Kind: UnknownFieldsDeny}, nil
		case "allow":
			return UnknownFieldsPolicy{Kind: UnknownFieldsAllow}, nil
		default:
			return UnknownFieldsPolicy{}, &ConversionError{Kind: InvalidExtensionValue, At: at, Extension: "unknown-fields"}
		}
	}
	s, err := extractSchema(doc, extId, at)
	if err != nil {
		return UnknownFieldsPolicy{}, err
	}
	return UnknownFieldsPolicy{Kind: UnknownFieldsTyped, Schema: s}, nil
}

// --- field-reading helpers -------------------------------------------------
//
// Constraint fields (min-length, range, pattern, ...) are read as plain
// Ident entries of the map; `$`-prefixed extensions are reserved for
// structural metadata ($variant, $variant-repr, $unknown-fields, $optional,
// $deprecated, $description, $default, $types).

func getChildByIdent(doc *document.Document, id document.NodeId, name string) (document.NodeId, bool) {
	m, ok := doc.Node(id).Content.(*document.Map)
	if !ok {
		return document.NoNode, false
	}
	return m.Lookup(document.DocIdent(name))
}

func extensionValue(doc *document.Document, n *document.Node, name string) (document.Value, bool) {
	id, ok := n.GetExtension(name)
	if !ok {
		return nil, false
	}
	return doc.ToValue(id), true
}

func getBoolFieldFromExt(doc *document.Document, n *document.Node, name string) bool {
	v, ok := extensionValue(doc, n, name)
	if !ok {
		return false
	}
	b, ok := v.(document.ValueBool)
	return ok && b.Value
}

func getStringFieldFromExt(doc *document.Document, n *document.Node, name string) string {
	v, ok := extensionValue(doc, n, name)
	if !ok {
		return ""
	}
	t, ok := v.(document.ValueText)
	if !ok {
		return ""
	}
	return t.Value
}

func getStringField(doc *document.Document, id document.NodeId, name string, at path.Path) (string, bool, error) {
	childId, ok := getChildByIdent(doc, id, name)
	if !ok {
		return "", false, nil
	}
	t, ok := doc.ToValue(childId).(document.ValueText)
	if !ok {
		return "", false, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name}
	}
	return t.Value, true, nil
}

func getIntField(doc *document.Document, id document.NodeId, name string, at path.Path) (int, bool, error) {
	childId, ok := getChildByIdent(doc, id, name)
	if !ok {
		return 0, false, nil
	}
	iv, ok := doc.ToValue(childId).(document.ValueInteger)
	if !ok {
		return 0, false, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name}
	}
	n, fits := iv.Value.Int64()
	if !fits {
		return 0, false, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name}
	}
	return int(n), true, nil
}

func getIntFieldPtr(doc *document.Document, id document.NodeId, name string, at path.Path) (*int, bool, error) {
	n, ok, err := getIntField(doc, id, name, at)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &n, true, nil
}

func getBoolField(doc *document.Document, id document.NodeId, name string, at path.Path) (bool, bool, error) {
	childId, ok := getChildByIdent(doc, id, name)
	if !ok {
		return false, false, nil
	}
	b, ok := doc.ToValue(childId).(document.ValueBool)
	if !ok {
		return false, false, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name}
	}
	return b.Value, true, nil
}

func getOptionalSchemaField(doc *document.Document, id document.NodeId, name string, at path.Path) (*Schema, error) {
	childId, ok := getChildByIdent(doc, id, name)
	if !ok {
		return nil, nil
	}
	return extractSchema(doc, childId, at)
}

func getBigIntField(doc *document.Document, id document.NodeId, name string, at path.Path) (*bigint.Int, error) {
	childId, ok := getChildByIdent(doc, id, name)
	if !ok {
		return nil, nil
	}
	switch v := doc.ToValue(childId).(type) {
	case document.ValueInteger:
		val := v.Value
		return &val, nil
	case document.ValueText:
		val, err := bigint.Parse(v.Value)
		if err != nil {
			return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name, Value: v.Value}
		}
		return &val, nil
	default:
		return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name}
	}
}

func getFloatField(doc *document.Document, id document.NodeId, name string, at path.Path) (*float64, error) {
	childId, ok := getChildByIdent(doc, id, name)
	if !ok {
		return nil, nil
	}
	switch v := doc.ToValue(childId).(type) {
	case document.ValueF64:
		f := v.Value
		return &f, nil
	case document.ValueF32:
		f := float64(v.Value)
		return &f, nil
	case document.ValueInteger:
		f := v.Value.Float64()
		return &f, nil
	case document.ValueText:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name, Value: v.Value}
		}
		return &f, nil
	default:
		return nil, &ConversionError{Kind: InvalidConstraintValue, At: at, Constraint: name}
	}
}

func getIntRangeField(doc *document.Document, id document.NodeId, name string, at path.Path) (IntRange, bool, error) {
	s, ok, err := getStringField(doc, id, name, at)
	if err != nil || !ok {
		return IntRange{}, ok, err
	}
	lo, hi, perr := parseRange(s)
	if perr != nil {
		return IntRange{}, false, perr
	}
	var r IntRange
	if lo.set {
		v, verr := bigint.Parse(lo.text)
		if verr != nil {
			return IntRange{}, false, &ConversionError{Kind: InvalidRangeString, At: at, RangeStr: s}
		}
		r.Min = IntBound{Value: v, Set: true, Inclusive: lo.incl}
	}
	if hi.set {
		v, verr := bigint.Parse(hi.text)
		if verr != nil {
			return IntRange{}, false, &ConversionError{Kind: InvalidRangeString, At: at, RangeStr: s}
		}
		r.Max = IntBound{Value: v, Set: true, Inclusive: hi.incl}
	}
	return r, true, nil
}

func getFloatRangeField(doc *document.Document, id document.NodeId, name string, at path.Path) (FloatRange, bool, error) {
	s, ok, err := getStringField(doc, id, name, at)
	if err != nil || !ok {
		return FloatRange{}, ok, err
	}
	lo, hi, perr := parseRange(s)
	if perr != nil {
		return FloatRange{}, false, perr
	}
	var r FloatRange
	if lo.set {
		v, verr := strconv.ParseFloat(lo.text, 64)
		if verr != nil {
			return FloatRange{}, false, &ConversionError{Kind: InvalidRangeString, At: at, RangeStr: s}
		}
		r.Min = FloatBound{Value: v, Set: true, Inclusive: lo.incl}
	}
	if hi.set {
		v, verr := strconv.ParseFloat(hi.text, 64)
		if verr != nil {
			return FloatRange{}, false, &ConversionError{Kind: InvalidRangeString, At: at, RangeStr: s}
		}
		r.Max = FloatBound{Value: v, Set: true, Inclusive: hi.incl}
	}
	return r, true, nil
}
