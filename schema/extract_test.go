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
	"testing"

	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/path"
	"github.com/go-quicktest/qt"
)

func pathPrim(segs ...path.Segment) document.Content {
	return document.Primitive{Value: document.PrimPath{Value: path.Path(segs)}}
}

func textPrim(s string) document.Content {
	return document.Primitive{Value: document.PrimText{Value: s}}
}

func intPrim(n int64) document.Content {
	return document.Primitive{Value: document.PrimInteger{Value: bigint.FromInt64(n)}}
}

func TestPrimitiveShorthandField(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("name")}, pathPrim(path.Ident("text")))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sd.Root.Kind, KindRecord))
	qt.Assert(t, qt.HasLen(sd.Root.Record.Fields, 1))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Name, "name"))
	qt.Assert(t, qt.Equals(f.Schema.Kind, KindText))
}

func TestTextShorthandWithLanguage(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("greeting")}, pathPrim(path.Ident("text"), path.Ident("en")))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Schema.Kind, KindText))
	qt.Assert(t, qt.IsNotNil(f.Schema.Text.Lang))
	qt.Assert(t, qt.Equals(f.Schema.Text.Lang.String(), "en"))
}

func TestArrayVariantWithItemAndMinLength(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("tags"), path.Extension("variant")}, textPrim("array"))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("tags"), path.Ident("item")}, pathPrim(path.Ident("text")))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("tags"), path.Ident("min-length")}, intPrim(2))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Name, "tags"))
	qt.Assert(t, qt.Equals(f.Schema.Kind, KindArray))
	qt.Assert(t, qt.IsNotNil(f.Schema.Array.Item))
	qt.Assert(t, qt.Equals(f.Schema.Array.Item.Kind, KindText))
	qt.Assert(t, qt.IsNotNil(f.Schema.Array.MinLength))
	qt.Assert(t, qt.Equals(*f.Schema.Array.MinLength, 2))
}

func TestRecordDefaultsToDenyUnknownFields(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("x")}, pathPrim(path.Ident("integer")))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sd.Root.Record.UnknownFields.Kind, UnknownFieldsDeny))
}

func TestRecordUnknownFieldsAllow(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Extension("unknown-fields")}, textPrim("allow"))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(sd.Root.Record.UnknownFields.Kind, UnknownFieldsAllow))
}

func TestTypesReferenceResolution(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Extension("types"), path.Ident("UserId")}, pathPrim(path.Ident("integer")))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("who")}, pathPrim(path.Extension("types"), path.Ident("UserId")))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Schema.Kind, KindReference))
	resolved, ok := sd.Resolve(f.Schema.Reference)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(resolved.Kind, KindInteger))
}

func TestNamespacedTypesReference(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Extension("types"), path.Ident("geo"), path.Ident("Lat")}, pathPrim(path.Ident("float")))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	ref := &ReferenceSchema{Namespace: "geo", Name: "Lat"}
	resolved, ok := sd.Resolve(ref)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(resolved.Kind, KindFloat))
}

func TestIntegerRangeConstraint(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("age"), path.Extension("variant")}, textPrim("integer"))
	qt.Assert(t, qt.IsNil(err))
	_, err = doc.InsertNode(path.Path{path.Ident("age"), path.Ident("range")}, textPrim("0..=150"))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Schema.Kind, KindInteger))
	rng := f.Schema.Integer.Range
	qt.Assert(t, qt.IsTrue(rng.Min.Set))
	qt.Assert(t, qt.IsTrue(rng.Min.Inclusive))
	qt.Assert(t, qt.Equals(rng.Min.Value.String(), "0"))
	qt.Assert(t, qt.IsTrue(rng.Max.Set))
	qt.Assert(t, qt.IsTrue(rng.Max.Inclusive))
	qt.Assert(t, qt.Equals(rng.Max.Value.String(), "150"))
}

func TestUndefinedTypeReferenceLeavesResolveFalse(t *testing.T) {
	doc := document.New()
	_, err := doc.InsertNode(path.Path{path.Ident("who")}, pathPrim(path.Extension("types"), path.Ident("Missing")))
	qt.Assert(t, qt.IsNil(err))

	sd, err := DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	_, ok := sd.Resolve(f.Schema.Reference)
	qt.Assert(t, qt.IsTrue(!ok))
}
