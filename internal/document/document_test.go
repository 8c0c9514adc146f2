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
	"testing"

	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/path"
	"github.com/go-quicktest/qt"
)

func text(s string) Content { return Primitive{Value: PrimText{Value: s}} }

func TestInsertSimpleField(t *testing.T) {
	d := New()
	p := path.Path{path.Ident("name")}
	id, err := d.InsertNode(p, text("Alice"))
	qt.Assert(t, qt.IsNil(err))

	v := d.ToValue(d.RootId())
	m, ok := v.(ValueMap)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(m.Entries, 1))
	qt.Assert(t, qt.Equals(m.Entries[0].Key.String(), "name"))
	qt.Assert(t, qt.DeepEquals(d.ToValue(id), ValueText{Value: "Alice"}))
}

func TestRebindSameFieldIsAlreadyAssigned(t *testing.T) {
	d := New()
	p := path.Path{path.Ident("name")}
	_, err := d.InsertNode(p, text("Alice"))
	qt.Assert(t, qt.IsNil(err))

	_, err = d.InsertNode(p, text("Bob"))
	qt.Assert(t, qt.IsNotNil(err))
	ie, ok := err.(*InsertError)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ie.Kind, AlreadyAssigned))
}

func TestArrayIndexGapFillsWithNull(t *testing.T) {
	d := New()
	p0 := path.Path{path.Ident("items").WithIndex(0)}
	p2 := path.Path{path.Ident("items").WithIndex(2)}

	_, err := d.InsertNode(p0, text("a"))
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(p2, text("c"))
	qt.Assert(t, qt.IsNil(err))

	items, _, err := d.GetOrInsert(path.Path{path.Ident("items")})
	qt.Assert(t, qt.IsNil(err))
	arr, ok := items.Content.(*Array)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.HasLen(arr.Elements, 3))

	vals := d.ToValue(d.RootId()).(ValueMap).Entries[0].Value.(ValueArray).Elements
	qt.Assert(t, qt.DeepEquals(vals[0], ValueText{Value: "a"}))
	qt.Assert(t, qt.DeepEquals(vals[1], ValueNull{}))
	qt.Assert(t, qt.DeepEquals(vals[2], ValueText{Value: "c"}))
}

func TestArrayGapFillThenRebindSameIndexConflicts(t *testing.T) {
	d := New()
	p2 := path.Path{path.Ident("items").WithIndex(2)}
	_, err := d.InsertNode(p2, text("c"))
	qt.Assert(t, qt.IsNil(err))

	p1 := path.Path{path.Ident("items").WithIndex(1)}
	_, err = d.InsertNode(p1, text("b"))
	qt.Assert(t, qt.IsNil(err), qt.Commentf("overwriting a Null gap-fill once must succeed"))

	_, err = d.InsertNode(p1, text("z"))
	qt.Assert(t, qt.IsNotNil(err), qt.Commentf("a second bind at the same index must fail"))
}

func TestArrayAppendCreatesFreshElements(t *testing.T) {
	d := New()
	p := path.Path{path.Ident("tags").WithAppend()}
	_, err := d.InsertNode(p, text("x"))
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(p, text("y"))
	qt.Assert(t, qt.IsNil(err))

	tagsVal := d.ToValue(d.RootId()).(ValueMap).Entries[0].Value.(ValueArray)
	qt.Assert(t, qt.HasLen(tagsVal.Elements, 2))
	qt.Assert(t, qt.DeepEquals(tagsVal.Elements[0], ValueText{Value: "x"}))
	qt.Assert(t, qt.DeepEquals(tagsVal.Elements[1], ValueText{Value: "y"}))
}

func TestNestedIdentPromotesUninitializedToMap(t *testing.T) {
	d := New()
	p := path.Path{path.Ident("user"), path.Ident("name")}
	_, err := d.InsertNode(p, text("Alice"))
	qt.Assert(t, qt.IsNil(err))

	user, _, err := d.GetOrInsert(path.Path{path.Ident("user")})
	qt.Assert(t, qt.IsNil(err))
	m, ok := user.Content.(*Map)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(m.Len(), 1))
}

func TestScalarThenNestedFieldIsPathConflict(t *testing.T) {
	d := New()
	_, err := d.InsertNode(path.Path{path.Ident("x")}, text("scalar"))
	qt.Assert(t, qt.IsNil(err))

	_, err = d.InsertNode(path.Path{path.Ident("x"), path.Ident("y")}, text("nested"))
	qt.Assert(t, qt.IsNotNil(err))
	ie, ok := err.(*InsertError)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ie.Kind, PathConflict))
	qt.Assert(t, qt.Equals(ie.Found, "value"))
}

func TestArrayIndexOnNonEmptyMapIsPathConflict(t *testing.T) {
	d := New()
	_, err := d.InsertNode(path.Path{path.Ident("config"), path.Ident("a")}, text("1"))
	qt.Assert(t, qt.IsNil(err))

	_, err = d.InsertNode(path.Path{path.Ident("config").WithIndex(0)}, text("x"))
	qt.Assert(t, qt.IsNotNil(err))
	ie, ok := err.(*InsertError)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ie.Kind, PathConflict))
	qt.Assert(t, qt.Equals(ie.Found, "map"))
}

func TestExtensionsAreDisjointFromDataChildren(t *testing.T) {
	d := New()
	_, err := d.InsertNode(path.Path{path.Ident("x")}, text("value"))
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(path.Path{path.Ident("x"), path.Extension("deprecated")}, Primitive{Value: PrimBool{Value: true}})
	qt.Assert(t, qt.IsNil(err), qt.Commentf("extensions must not conflict with a scalar's Content"))

	root, _, _ := d.GetOrInsert(path.Path{})
	xId, ok := root.Content.(*Map).Lookup(DocIdent("x"))
	qt.Assert(t, qt.IsTrue(ok))
	xNode := d.Node(xId)
	_, hasExt := xNode.GetExtension("deprecated")
	qt.Assert(t, qt.IsTrue(hasExt))
	qt.Assert(t, qt.DeepEquals(d.ToValue(xId), ValueText{Value: "value"}))
}

func TestTupleIndexSequentialAppend(t *testing.T) {
	d := New()
	_, err := d.InsertNode(path.Path{path.Ident("pair")}, &Tuple{})
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(path.Path{path.Ident("pair"), path.TupleIndex(0)}, text("a"))
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(path.Path{path.Ident("pair"), path.TupleIndex(1)}, text("b"))
	qt.Assert(t, qt.IsNil(err))

	v := d.ToValue(d.RootId()).(ValueMap).Entries[0].Value.(ValueTuple)
	qt.Assert(t, qt.DeepEquals(v.Elements, []Value{ValueText{Value: "a"}, ValueText{Value: "b"}}))
}

func TestTupleIndexOutOfOrderIsInvalid(t *testing.T) {
	d := New()
	_, err := d.InsertNode(path.Path{path.Ident("pair")}, &Tuple{})
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(path.Path{path.Ident("pair"), path.TupleIndex(1)}, text("b"))
	qt.Assert(t, qt.IsNotNil(err))
	ie, ok := err.(*InsertError)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ie.Kind, TupleIndexInvalid))
}

func TestIntegerPrimitiveRoundTrips(t *testing.T) {
	d := New()
	n, err := bigint.Parse("9007199254740993")
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(path.Path{path.Ident("big")}, Primitive{Value: PrimInteger{Value: n}})
	qt.Assert(t, qt.IsNil(err))

	v := d.ToValue(d.RootId()).(ValueMap).Entries[0].Value.(ValueInteger)
	qt.Assert(t, qt.Equals(v.Value.String(), "9007199254740993"))
}

func TestMetaExtensionEntryIsDroppedOnProjection(t *testing.T) {
	d := New()
	_, err := d.InsertNode(path.Path{path.MetaExt("id")}, text("schema-id"))
	qt.Assert(t, qt.IsNil(err))
	_, err = d.InsertNode(path.Path{path.Ident("x")}, text("value"))
	qt.Assert(t, qt.IsNil(err))

	m := d.ToValue(d.RootId()).(ValueMap)
	qt.Assert(t, qt.HasLen(m.Entries, 1))
	qt.Assert(t, qt.Equals(m.Entries[0].Key.String(), "x"))
}
