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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/eure-lang/eure/internal/bigint"
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/internal/source"
	"github.com/eure-lang/eure/path"
)

// No surface-syntax parser exists in this repository (lexing and parsing a
// .eure file is out of scope), so this CLI's only source format is JSON: a
// self-describing event stream it replays into the arena one Step/
// AssignContent call at a time, exactly as internal/layout's Constructor
// would replay an author's keystrokes. A JSON object becomes a record; a
// JSON array becomes a sequence of appended elements (never explicit
// indices, which the arena reserves for sparse scalar gap-filling,
// SPEC_FULL.md §4.1 ArrayIndex rules); JSON numbers are read with
// json.Number so integers stay exact via internal/bigint rather than
// rounding through float64.
//
// Two surface conventions fill in what JSON has no native shape for,
// matching how EURE's own syntax spells the same things: an object key
// spelled "$name" becomes an Extension("name") segment rather than an
// ordinary field (so a schema file's "$variant"/"$types"/... reach
// Node.Extensions, where package schema's extractor reads them); a string
// value starting with "." is a path literal (e.g. ".text" or
// ".$types.UserId"), split on "." with each "$"-prefixed component an
// Extension segment and every other component an Ident segment — this is
// how schema extraction's own primitive-shorthand fields
// (SPEC_FULL.md §4.3, "name = .text") are spelled as data.
func buildFromJSON(src source.Source) (*document.Document, error) {
	data, err := src.Read()
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var top interface{}
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	root, ok := top.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("top-level JSON value must be an object (a EURE document's root is always a record)")
	}

	doc := document.New()
	for name, val := range root {
		seg := segmentForName(name)
		at := path.Path{seg}
		id, err := doc.Step(doc.RootId(), seg, at)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", at, err)
		}
		if err := writeJSONValue(doc, id, at, val); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// writeJSONValue writes val's shape into the already-resolved node id,
// recursing into nested objects and arrays.
func writeJSONValue(doc *document.Document, id document.NodeId, at path.Path, val interface{}) error {
	switch v := val.(type) {
	case map[string]interface{}:
		for name, child := range v {
			seg := segmentForName(name)
			childAt := at.Append(seg)
			childId, err := doc.Step(id, seg, childAt)
			if err != nil {
				return fmt.Errorf("%s: %w", childAt, err)
			}
			if err := writeJSONValue(doc, childId, childAt, child); err != nil {
				return err
			}
		}
		return nil
	case []interface{}:
		// id already names the field (e.g. "tags"); StepArray applies the
		// array attribute to that same node. Every call appends a fresh
		// element, never an explicit index, which the arena reserves for
		// sparse scalar gap-filling rather than record-shaped elements.
		for i, el := range v {
			attr := path.Array{Present: true, HasIndex: false}
			elAt := withArrayIndex(at, i)
			elId, err := doc.StepArray(id, attr, elAt)
			if err != nil {
				return fmt.Errorf("%s: %w", elAt, err)
			}
			if err := writeJSONValue(doc, elId, elAt, el); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return doc.AssignContent(id, document.Primitive{Value: document.PrimNull{}}, at)
	case bool:
		return doc.AssignContent(id, document.Primitive{Value: document.PrimBool{Value: v}}, at)
	case string:
		if strings.HasPrefix(v, ".") {
			return doc.AssignContent(id, document.Primitive{Value: document.PrimPath{Value: parsePathLiteral(v)}}, at)
		}
		return doc.AssignContent(id, document.Primitive{Value: document.PrimText{Value: v}}, at)
	case json.Number:
		return doc.AssignContent(id, numberContent(v), at)
	default:
		return fmt.Errorf("%s: unsupported JSON value %T", at, val)
	}
}

// withArrayIndex is a diagnostic-only rendering of at with its last segment
// marked at index i; it does not affect arena navigation (StepArray always
// appends here), only error-path text.
func withArrayIndex(at path.Path, i int) path.Path {
	if len(at) == 0 {
		return at
	}
	out := make(path.Path, len(at))
	copy(out, at)
	out[len(out)-1] = out[len(out)-1].WithIndex(i)
	return out
}

// segmentForName builds the segment a JSON object key maps to: "$name"
// addresses the node's Extensions["name"] slot, everything else an
// ordinary field.
func segmentForName(name string) path.Segment {
	if strings.HasPrefix(name, "$") {
		return path.Extension(strings.TrimPrefix(name, "$"))
	}
	return path.Ident(name)
}

// parsePathLiteral splits a dotted path literal (its leading "." already
// identifies the string as one, see buildFromJSON's doc comment) into
// segments, honoring the same "$name" is an extension convention.
func parsePathLiteral(s string) path.Path {
	parts := strings.Split(strings.TrimPrefix(s, "."), ".")
	out := make(path.Path, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		out = append(out, segmentForName(p))
	}
	return out
}

// numberContent classifies a JSON number as an exact integer (via
// internal/bigint, arbitrary precision) or a float.
func numberContent(n json.Number) document.Content {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := bigint.Parse(s); err == nil {
			return document.Primitive{Value: document.PrimInteger{Value: i}}
		}
	}
	f, _ := n.Float64()
	return document.Primitive{Value: document.PrimF64{Value: f}}
}
