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

// NodeId is a stable handle into a Document's arena. It is only valid
// against the Document that issued it (SPEC_FULL.md §5: "Cross-arena IDs
// are undefined behavior").
type NodeId int

// NoNode is the sentinel used for a node with no parent (and for "no
// node" results); it is -1, since NodeId 0 is the root.
const NoNode NodeId = -1

// DocumentKeyKind discriminates DocumentKey variants.
type DocumentKeyKind int

const (
	KeyIdent DocumentKeyKind = iota
	KeyMetaExtension
	KeyValue
	KeyTupleIndex
)

// DocumentKey discriminates entries of a Map or slots of a Tuple.
// Extensions are never a DocumentKey; they live in Node.Extensions
// (SPEC_FULL.md §3.2).
type DocumentKey struct {
	Kind  DocumentKeyKind
	Ident string        // valid for KeyIdent, KeyMetaExtension
	Value path.ObjectKey // valid for KeyValue
	Tuple int           // valid for KeyTupleIndex
}

// DocIdent builds an Ident document key.
func DocIdent(name string) DocumentKey { return DocumentKey{Kind: KeyIdent, Ident: name} }

// DocMetaExtension builds a MetaExtension document key.
func DocMetaExtension(name string) DocumentKey {
	return DocumentKey{Kind: KeyMetaExtension, Ident: name}
}

// DocValue builds a Value document key.
func DocValue(key path.ObjectKey) DocumentKey { return DocumentKey{Kind: KeyValue, Value: key} }

// DocTupleIndex builds a TupleIndex document key.
func DocTupleIndex(n int) DocumentKey { return DocumentKey{Kind: KeyTupleIndex, Tuple: n} }

// Equal reports whether two document keys address the same slot.
func (k DocumentKey) Equal(o DocumentKey) bool {
	if k.Kind != o.Kind {
		return false
	}
	switch k.Kind {
	case KeyIdent, KeyMetaExtension:
		return k.Ident == o.Ident
	case KeyValue:
		return k.Value.Equal(o.Value)
	case KeyTupleIndex:
		return k.Tuple == o.Tuple
	}
	return false
}

// Content is the sum type held by a Node (SPEC_FULL.md §3.2). It follows
// the same interface-plus-marker-method idiom the teacher uses for
// cue/ast.Expr: a closed set of concrete types implement contentNode.
type Content interface {
	contentNode()
}

// Uninitialized marks an intermediate node created by navigation whose
// final kind is not yet known; it is replaced on first binding.
type Uninitialized struct{}

func (Uninitialized) contentNode() {}

// Primitive wraps one PrimitiveValue.
type Primitive struct{ Value PrimitiveValue }

func (Primitive) contentNode() {}

// Array is an ordered, append-friendly sequence of child nodes.
type Array struct{ Elements []NodeId }

func (*Array) contentNode() {}

// Tuple is a fixed-arity sequence of child nodes, indexed by TupleIndex.
type Tuple struct{ Elements []NodeId }

func (*Tuple) contentNode() {}

// mapEntry is one insertion-ordered entry of a Map.
type mapEntry struct {
	Key DocumentKey
	Id  NodeId
}

// Map is an insertion-ordered mapping from DocumentKey to child node.
type Map struct{ entries []mapEntry }

func (*Map) contentNode() {}

// Lookup finds the child for key, if any.
func (m *Map) Lookup(key DocumentKey) (NodeId, bool) {
	for _, e := range m.entries {
		if e.Key.Equal(key) {
			return e.Id, true
		}
	}
	return NoNode, false
}

// Len reports the number of entries.
func (m *Map) Len() int { return len(m.entries) }

// Entries reports the entries in insertion order. The returned slice must
// not be mutated by callers outside this package.
func (m *Map) Entries() []mapEntry { return m.entries }

// Insert appends a new key/child pair. The caller must have already
// checked that key is not present (via Lookup).
func (m *Map) insert(key DocumentKey, id NodeId) {
	m.entries = append(m.entries, mapEntry{Key: key, Id: id})
}

// Hole is an explicit unfilled placeholder, optionally named.
type Hole struct{ Label *string }

func (*Hole) contentNode() {}

// PrimitiveValue is the sum type of leaf values (SPEC_FULL.md §3.2).
type PrimitiveValue interface {
	primitiveNode()
}

type PrimNull struct{}

func (PrimNull) primitiveNode() {}

type PrimBool struct{ Value bool }

func (PrimBool) primitiveNode() {}

type PrimInteger struct{ Value bigint.Int }

func (PrimInteger) primitiveNode() {}

type PrimF32 struct{ Value float32 }

func (PrimF32) primitiveNode() {}

type PrimF64 struct{ Value float64 }

func (PrimF64) primitiveNode() {}

type PrimText struct{ Value string }

func (PrimText) primitiveNode() {}

type PrimPath struct{ Value path.Path }

func (PrimPath) primitiveNode() {}

// PrimVariant is an external-tagged payload carried as a primitive-level
// value (e.g. a document built directly from an already-tagged source).
type PrimVariant struct {
	Tag     string
	Payload Value
}

func (PrimVariant) primitiveNode() {}

// Node is one element of the Document arena.
type Node struct {
	Content    Content
	Extensions map[string]NodeId // keyed by extension Ident, disjoint from Content
	Parent     NodeId
}

func newNode(parent NodeId, content Content) *Node {
	return &Node{Content: content, Parent: parent}
}

// GetExtension looks up an extension slot by name.
func (n *Node) GetExtension(name string) (NodeId, bool) {
	id, ok := n.Extensions[name]
	return id, ok
}

func (n *Node) extension(name string) NodeId {
	if n.Extensions == nil {
		n.Extensions = make(map[string]NodeId)
	}
	if id, ok := n.Extensions[name]; ok {
		return id
	}
	return NoNode
}
