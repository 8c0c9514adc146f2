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

package main

import (
	"testing"

	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/internal/source"
	"github.com/eure-lang/eure/schema"
	"github.com/go-quicktest/qt"
)

func TestBuildFromJSONScalarsAndNesting(t *testing.T) {
	doc, err := buildFromJSON(source.NewStringSource(`{
		"name": "alice",
		"age": 30,
		"active": true,
		"note": null,
		"address": {"city": "lyon"}
	}`))
	qt.Assert(t, qt.IsNil(err))

	v := doc.ToValue(doc.RootId()).(document.ValueMap)
	entries := map[string]document.Value{}
	for _, e := range v.Entries {
		entries[e.Key.String()] = e.Value
	}

	qt.Assert(t, qt.DeepEquals(entries["name"], document.ValueText{Value: "alice"}))
	qt.Assert(t, qt.DeepEquals(entries["active"], document.ValueBool{Value: true}))
	qt.Assert(t, qt.DeepEquals(entries["note"], document.ValueNull{}))

	age := entries["age"].(document.ValueInteger)
	qt.Assert(t, qt.Equals(age.Value.String(), "30"))

	addr := entries["address"].(document.ValueMap)
	qt.Assert(t, qt.HasLen(addr.Entries, 1))
	qt.Assert(t, qt.Equals(addr.Entries[0].Key.String(), "city"))
}

func TestBuildFromJSONArrayAppendsElements(t *testing.T) {
	doc, err := buildFromJSON(source.NewStringSource(`{"tags": ["a", "b", "c"]}`))
	qt.Assert(t, qt.IsNil(err))

	v := doc.ToValue(doc.RootId()).(document.ValueMap)
	tags := v.Entries[0].Value.(document.ValueArray)
	qt.Assert(t, qt.HasLen(tags.Elements, 3))
	qt.Assert(t, qt.DeepEquals(tags.Elements[1], document.ValueText{Value: "b"}))
}

func TestBuildFromJSONArrayOfObjects(t *testing.T) {
	doc, err := buildFromJSON(source.NewStringSource(`{"items": [{"price": 1}, {"price": 2}]}`))
	qt.Assert(t, qt.IsNil(err))

	v := doc.ToValue(doc.RootId()).(document.ValueMap)
	items := v.Entries[0].Value.(document.ValueArray)
	qt.Assert(t, qt.HasLen(items.Elements, 2))
	first := items.Elements[0].(document.ValueMap)
	price := first.Entries[0].Value.(document.ValueInteger)
	qt.Assert(t, qt.Equals(price.Value.String(), "1"))
}

func TestBuildFromJSONRejectsNonObjectRoot(t *testing.T) {
	_, err := buildFromJSON(source.NewStringSource(`[1, 2, 3]`))
	qt.Assert(t, qt.IsNotNil(err))
}

func TestBuildFromJSONDollarKeyIsExtension(t *testing.T) {
	doc, err := buildFromJSON(source.NewStringSource(`{
		"tags": {"$variant": "array", "item": ".text", "min-length": 2}
	}`))
	qt.Assert(t, qt.IsNil(err))

	sd, err := schema.DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Name, "tags"))
	qt.Assert(t, qt.Equals(f.Schema.Kind, schema.KindArray))
	qt.Assert(t, qt.Equals(f.Schema.Array.Item.Kind, schema.KindText))
	qt.Assert(t, qt.Equals(*f.Schema.Array.MinLength, 2))
}

func TestBuildFromJSONPathLiteralShorthand(t *testing.T) {
	doc, err := buildFromJSON(source.NewStringSource(`{"name": ".text"}`))
	qt.Assert(t, qt.IsNil(err))

	sd, err := schema.DocumentToSchema(doc)
	qt.Assert(t, qt.IsNil(err))
	f := sd.Root.Record.Fields[0]
	qt.Assert(t, qt.Equals(f.Name, "name"))
	qt.Assert(t, qt.Equals(f.Schema.Kind, schema.KindText))
}
