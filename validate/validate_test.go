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
	"testing"

	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/path"
	"github.com/eure-lang/eure/schema"
	"github.com/go-quicktest/qt"
)

func intPrim(n int64) document.Content {
	return document.Primitive{Value: document.PrimInteger{Value: bigint.FromInt64(n)}}
}

func textPrim(s string) document.Content {
	return document.Primitive{Value: document.PrimText{Value: s}}
}

func recordSchema(minLen int) *schema.SchemaDocument {
	n := minLen
	return &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindRecord,
			Record: &schema.RecordSchema{
				Fields: []schema.RecordField{
					{Name: "name", Schema: &schema.Schema{Kind: schema.KindText, Text: &schema.TextSchema{MinLength: &n}}},
				},
				UnknownFields: schema.UnknownFieldsPolicy{Kind: schema.UnknownFieldsDeny},
			},
		},
	}
}

func TestStringLengthOutOfBounds(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("name")}, textPrim("ab"))
	qt.Assert(t, qt.IsNil(err))

	v := New(recordSchema(5))
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(!result.IsValid()))
	qt.Assert(t, qt.HasLen(result.Errors, 1))
	ve := result.Errors[0].(*ValidationError)
	qt.Assert(t, qt.Equals(ve.Kind, StringLengthOutOfBounds))
}

func TestValidRecordPasses(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("name")}, textPrim("alice"))
	qt.Assert(t, qt.IsNil(err))

	v := New(recordSchema(3))
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(result.IsValid()))
	qt.Assert(t, qt.IsTrue(result.IsComplete()))
}

func TestUnknownFieldDeniedByDefault(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("name")}, textPrim("alice"))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("extra")}, textPrim("oops"))
	qt.Assert(t, qt.IsNil(err))

	v := New(recordSchema(1))
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(!result.IsValid()))
	found := false
	for _, e := range result.Errors {
		if ve, ok := e.(*ValidationError); ok && ve.Kind == UnknownField && ve.Field == "extra" {
			found = true
		}
	}
	qt.Assert(t, qt.IsTrue(found))
}

func TestMissingRequiredField(t *testing.T) {
	doc := document.New()

	v := New(recordSchema(1))
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(!result.IsValid()))
	qt.Assert(t, qt.HasLen(result.Errors, 1))
	ve := result.Errors[0].(*ValidationError)
	qt.Assert(t, qt.Equals(ve.Kind, MissingRequiredField))
	qt.Assert(t, qt.Equals(ve.Field, "name"))
}

func TestHoleMarksIncompleteNotInvalid(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("name")}, &document.Hole{})
	qt.Assert(t, qt.IsNil(err))

	v := New(recordSchema(1))
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(result.IsValid()))
	qt.Assert(t, qt.IsTrue(!result.IsComplete()))
}

func TestIntegerOutOfRange(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("age")}, intPrim(200))
	qt.Assert(t, qt.IsNil(err))

	sd := &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindRecord,
			Record: &schema.RecordSchema{
				Fields: []schema.RecordField{
					{Name: "age", Schema: &schema.Schema{
						Kind: schema.KindInteger,
						Integer: &schema.IntegerSchema{
							Range: schema.IntRange{
								Min: schema.IntBound{Value: bigint.FromInt64(0), Set: true, Inclusive: true},
								Max: schema.IntBound{Value: bigint.FromInt64(150), Set: true, Inclusive: true},
							},
						},
					}},
				},
				UnknownFields: schema.UnknownFieldsPolicy{Kind: schema.UnknownFieldsDeny},
			},
		},
	}

	v := New(sd)
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(!result.IsValid()))
	ve := result.Errors[0].(*ValidationError)
	qt.Assert(t, qt.Equals(ve.Kind, OutOfRange))
}

func TestUntaggedUnionNoVariantMatched(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{}, textPrim("hello"))
	qt.Assert(t, qt.IsNil(err))

	sd := &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindUnion,
			Union: &schema.UnionSchema{
				Repr: schema.VariantRepr{Kind: schema.ReprUntagged},
				Variants: []schema.UnionVariant{
					{Name: "asInt", Schema: &schema.Schema{Kind: schema.KindInteger, Integer: &schema.IntegerSchema{}}},
					{Name: "asBool", Schema: &schema.Schema{Kind: schema.KindBoolean}},
				},
			},
		},
	}

	v := New(sd)
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(!result.IsValid()))
	ve := result.Errors[0].(*ValidationError)
	qt.Assert(t, qt.Equals(ve.Kind, NoVariantMatched))
	qt.Assert(t, qt.HasLen(ve.VariantErrors, 2))
}

func TestUntaggedUnionMatchesOneVariant(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{}, intPrim(42))
	qt.Assert(t, qt.IsNil(err))

	sd := &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindUnion,
			Union: &schema.UnionSchema{
				Repr: schema.VariantRepr{Kind: schema.ReprUntagged},
				Variants: []schema.UnionVariant{
					{Name: "asInt", Schema: &schema.Schema{Kind: schema.KindInteger, Integer: &schema.IntegerSchema{}}},
					{Name: "asText", Schema: &schema.Schema{Kind: schema.KindText, Text: &schema.TextSchema{}}},
				},
			},
		},
	}

	v := New(sd)
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(result.IsValid()))
}

func TestExternalUnionWithSingleFieldMap(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("circle"), path.Ident("radius")}, intPrim(5))
	qt.Assert(t, qt.IsNil(err))

	sd := &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindUnion,
			Union: &schema.UnionSchema{
				Repr: schema.VariantRepr{Kind: schema.ReprExternal},
				Variants: []schema.UnionVariant{
					{Name: "circle", Schema: &schema.Schema{
						Kind: schema.KindRecord,
						Record: &schema.RecordSchema{
							Fields:        []schema.RecordField{{Name: "radius", Schema: &schema.Schema{Kind: schema.KindInteger, Integer: &schema.IntegerSchema{}}}},
							UnknownFields: schema.UnknownFieldsPolicy{Kind: schema.UnknownFieldsDeny},
						},
					}},
				},
			},
		},
	}

	v := New(sd)
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(result.IsValid()))
}

func TestInternalUnionTagFieldExemptFromUnknownField(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("kind")}, textPrim("circle"))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("radius")}, intPrim(5))
	qt.Assert(t, qt.IsNil(err))

	sd := &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindUnion,
			Union: &schema.UnionSchema{
				Repr: schema.VariantRepr{Kind: schema.ReprInternal, Tag: "kind"},
				Variants: []schema.UnionVariant{
					{Name: "circle", Schema: &schema.Schema{
						Kind: schema.KindRecord,
						Record: &schema.RecordSchema{
							Fields:        []schema.RecordField{{Name: "radius", Schema: &schema.Schema{Kind: schema.KindInteger, Integer: &schema.IntegerSchema{}}}},
							UnknownFields: schema.UnknownFieldsPolicy{Kind: schema.UnknownFieldsDeny},
						},
					}},
				},
			},
		},
	}

	v := New(sd)
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(result.IsValid()))
}

func TestArrayUniqueConstraintViolated(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("tags").WithAppend()}, textPrim("a"))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("tags").WithAppend()}, textPrim("a"))
	qt.Assert(t, qt.IsNil(err))

	sd := &schema.SchemaDocument{
		Root: &schema.Schema{
			Kind: schema.KindRecord,
			Record: &schema.RecordSchema{
				Fields: []schema.RecordField{
					{Name: "tags", Schema: &schema.Schema{
						Kind: schema.KindArray,
						Array: &schema.ArraySchema{
							Item:   &schema.Schema{Kind: schema.KindText, Text: &schema.TextSchema{}},
							Unique: true,
						},
					}},
				},
				UnknownFields: schema.UnknownFieldsPolicy{Kind: schema.UnknownFieldsDeny},
			},
		},
	}

	v := New(sd)
	result := v.Validate(doc)
	qt.Assert(t, qt.IsTrue(!result.IsValid()))
	ve := result.Errors[0].(*ValidationError)
	qt.Assert(t, qt.Equals(ve.Kind, ArrayNotUnique))
}
