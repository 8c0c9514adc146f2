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

// Package document implements the document arena (SPEC_FULL.md §4.1): the
// arena of Nodes addressed by stable NodeId, the path-driven insertion
// algorithm, and the conflict rules that keep navigation total (every
// failure is a typed InsertError, never a panic).
//
// The Vertex/arc-list shape of cuelang.org/go's internal/core/adt.Vertex
// is the model for Node: a parent pointer, an ordered list of children
// (here split between Map/Array/Tuple Content and a disjoint Extensions
// slot) instead of CUE's single flat Arcs list, because EURE's extensions
// and data children must never alias (SPEC_FULL.md §3.3 invariant 1).
package document

import (
	"github.com/eure-lang/eure/path"
)

// Document is the arena. The zero value is not usable; use New.
type Document struct {
	nodes []*Node
	root  NodeId
}

// New returns an arena with a single root Map node (SPEC_FULL.md §3.3
// invariant 3).
func New() *Document {
	d := &Document{}
	d.nodes = append(d.nodes, newNode(NoNode, &Map{}))
	d.root = 0
	return d
}

// RootId returns the id of the root node.
func (d *Document) RootId() NodeId { return d.root }

// Node returns the node for id. Panics if id is out of range; callers only
// ever hold ids this Document issued.
func (d *Document) Node(id NodeId) *Node { return d.nodes[id] }

func (d *Document) alloc(parent NodeId, content Content) NodeId {
	id := NodeId(len(d.nodes))
	d.nodes = append(d.nodes, newNode(parent, content))
	return id
}

// InsertNode traverses (creating intermediates as necessary) to p and sets
// its content, enforcing the conflict rules of SPEC_FULL.md §4.1. It
// returns the NodeId of the bound node.
func (d *Document) InsertNode(p path.Path, content Content) (NodeId, error) {
	id, err := d.traverse(p)
	if err != nil {
		return NoNode, err
	}
	if err := d.assign(id, content, p); err != nil {
		return NoNode, err
	}
	return id, nil
}

// GetOrInsert traverses to p, creating intermediates as necessary, and
// returns the final node for the caller to bind directly.
func (d *Document) GetOrInsert(p path.Path) (*Node, NodeId, error) {
	id, err := d.traverse(p)
	if err != nil {
		return nil, NoNode, err
	}
	return d.nodes[id], id, nil
}

// traverse walks p from the root, creating intermediate nodes as needed,
// and returns the id of the final segment's node.
func (d *Document) traverse(p path.Path) (NodeId, error) {
	cur := d.root
	for i, seg := range p {
		next, err := d.descend(cur, seg, p[:i+1])
		if err != nil {
			return NoNode, err
		}
		cur = next
	}
	return cur, nil
}

// descend resolves one path segment from parent, promoting Uninitialized
// content and enforcing the conflict table of SPEC_FULL.md §4.1.
// soFar is the path up to and including seg, used to build conflict paths.
func (d *Document) descend(parent NodeId, seg path.Segment, soFar path.Path) (NodeId, error) {
	if seg.Kind == path.KindExtension {
		return d.descendExtension(parent, seg)
	}

	key := segmentKey(seg)
	childId, err := d.descendMapKey(parent, key, soFar)
	if err != nil {
		return NoNode, err
	}

	if !seg.Array.Present {
		return childId, nil
	}
	return d.descendArray(childId, seg, soFar)
}

// Step resolves one plain (non-array) path segment from parent, for
// incremental callers such as the source constructor that navigate one
// event at a time rather than building a whole path.Path up front.
// soFar is the path up to and including seg, used to build conflict paths.
func (d *Document) Step(parent NodeId, seg path.Segment, soFar path.Path) (NodeId, error) {
	return d.descend(parent, seg, soFar)
}

// StepArray applies a standalone array-index event to an already-resolved
// node (SPEC_FULL.md §4.2: "An incoming ArrayIndex(k) segment does not
// append [to the path]; it merges into the previous segment's array
// attribute" — but the arena must still promote/descend that node into its
// array slot). soFar is the full path including the array attribute, for
// conflict reporting.
func (d *Document) StepArray(current NodeId, attr path.Array, soFar path.Path) (NodeId, error) {
	seg := path.Segment{Array: attr}
	return d.descendArray(current, seg, soFar)
}

func segmentKey(seg path.Segment) DocumentKey {
	switch seg.Kind {
	case path.KindIdent:
		return DocIdent(seg.Ident)
	case path.KindMetaExt:
		return DocMetaExtension(seg.Ident)
	case path.KindValue:
		return DocValue(seg.Value)
	case path.KindTupleIndex:
		return DocTupleIndex(seg.Tuple)
	}
	return DocumentKey{}
}

// parentPath returns soFar without its last segment, for conflicts that
// are reported against the parent rather than the segment itself.
func parentPath(soFar path.Path) path.Path {
	if len(soFar) == 0 {
		return soFar
	}
	return soFar[:len(soFar)-1]
}

// descendExtension resolves an Extension(id) segment: lookup-or-create in
// the parent's extension slot, independent of the parent's Content kind
// (extensions and data children are disjoint, invariant 1).
func (d *Document) descendExtension(parent NodeId, seg path.Segment) (NodeId, error) {
	n := d.nodes[parent]
	if n.Extensions == nil {
		n.Extensions = make(map[string]NodeId)
	}
	if id, ok := n.Extensions[seg.Ident]; ok {
		return id, nil
	}
	id := d.alloc(parent, &Map{})
	n.Extensions[seg.Ident] = id
	return id, nil
}

// descendMapKey resolves an Ident/Value/TupleIndex/MetaExt segment under
// parent, which must be a Map (or promotable Uninitialized/empty-Map).
func (d *Document) descendMapKey(parent NodeId, key DocumentKey, soFar path.Path) (NodeId, error) {
	n := d.nodes[parent]
	switch c := n.Content.(type) {
	case Uninitialized:
		n.Content = &Map{}
	case *Map:
		// fine, continue below
	case Primitive:
		return NoNode, &InsertError{Kind: PathConflict, At: parentPath(soFar), Found: "value"}
	case *Array:
		return NoNode, &InsertError{Kind: PathConflict, At: parentPath(soFar), Found: "array"}
	case *Tuple:
		if key.Kind != KeyTupleIndex {
			return NoNode, &InsertError{Kind: PathConflict, At: parentPath(soFar), Found: "tuple"}
		}
		return d.descendTupleIndex(parent, c, key.Tuple, soFar)
	case *Hole:
		return NoNode, &InsertError{Kind: PathConflict, At: parentPath(soFar), Found: "value"}
	}

	m := n.Content.(*Map)
	if id, ok := m.Lookup(key); ok {
		return id, nil
	}
	id := d.alloc(parent, Uninitialized{})
	m.insert(key, id)
	return id, nil
}

func (d *Document) descendTupleIndex(parent NodeId, t *Tuple, idx int, soFar path.Path) (NodeId, error) {
	if idx == len(t.Elements) {
		id := d.alloc(parent, Uninitialized{})
		t.Elements = append(t.Elements, id)
		return id, nil
	}
	if idx < len(t.Elements) {
		return t.Elements[idx], nil
	}
	return NoNode, &InsertError{
		Kind: TupleIndexInvalid, At: soFar, Index: idx, ExpectedIndex: len(t.Elements),
	}
}

// descendArray resolves the array attribute of seg against childId, which
// must become/be an Array (SPEC_FULL.md §4.1 ArrayIndex rules).
func (d *Document) descendArray(childId NodeId, seg path.Segment, soFar path.Path) (NodeId, error) {
	n := d.nodes[childId]
	switch c := n.Content.(type) {
	case Uninitialized:
		n.Content = &Array{}
	case *Map:
		if c.Len() != 0 {
			return NoNode, &InsertError{Kind: PathConflict, At: soFar, Found: "map"}
		}
		n.Content = &Array{}
	case *Array:
		// fine
	case Primitive:
		return NoNode, &InsertError{Kind: PathConflict, At: soFar, Found: "value"}
	case *Tuple:
		return NoNode, &InsertError{Kind: PathConflict, At: soFar, Found: "tuple"}
	case *Hole:
		return NoNode, &InsertError{Kind: PathConflict, At: soFar, Found: "value"}
	}

	arr := n.Content.(*Array)
	if !seg.Array.HasIndex {
		id := d.alloc(childId, Uninitialized{})
		arr.Elements = append(arr.Elements, id)
		return id, nil
	}

	idx := seg.Array.Index
	for len(arr.Elements) <= idx {
		id := d.alloc(childId, Primitive{Value: PrimNull{}})
		arr.Elements = append(arr.Elements, id)
	}
	return arr.Elements[idx], nil
}

// AssignContent sets content on an already-resolved node, for incremental
// callers (such as the source constructor's bind_* events) that hold a
// NodeId directly rather than a full path.Path.
func (d *Document) AssignContent(id NodeId, content Content, p path.Path) error {
	return d.assign(id, content, p)
}

// assign sets content on the node at id, enforcing the terminal-bind rules
// of SPEC_FULL.md §4.1: an empty, untouched node may be bound once; a Null
// array gap-fill may be overwritten once; anything else is AlreadyAssigned.
func (d *Document) assign(id NodeId, content Content, p path.Path) error {
	n := d.nodes[id]
	isArrayElement := len(p) > 0 && p[len(p)-1].Array.Present

	switch c := n.Content.(type) {
	case Uninitialized:
		n.Content = content
		return nil
	case *Map:
		if c.Len() == 0 && len(n.Extensions) == 0 {
			n.Content = content
			return nil
		}
	case Primitive:
		if isArrayElement {
			if _, ok := c.Value.(PrimNull); ok {
				n.Content = content
				return nil
			}
		}
	}

	var key DocumentKey
	if len(p) > 0 {
		key = segmentKey(p[len(p)-1])
	}
	return &InsertError{Kind: AlreadyAssigned, At: p, Key: key}
}

// ToValue projects the subtree rooted at id into a plain Value tree,
// discarding extensions and meta-extensions (SPEC_FULL.md §3.3 invariant
// 6). Use d.RootId() to project the whole document.
func (d *Document) ToValue(id NodeId) Value {
	n := d.nodes[id]
	switch c := n.Content.(type) {
	case Uninitialized:
		return ValueHole{}
	case Primitive:
		return projectPrimitive(c.Value)
	case *Array:
		out := make([]Value, len(c.Elements))
		for i, el := range c.Elements {
			out[i] = d.ToValue(el)
		}
		return ValueArray{Elements: out}
	case *Tuple:
		out := make([]Value, len(c.Elements))
		for i, el := range c.Elements {
			out[i] = d.ToValue(el)
		}
		return ValueTuple{Elements: out}
	case *Map:
		entries := make([]ValueMapEntry, 0, c.Len())
		for _, e := range c.Entries() {
			key, ok := documentKeyToObjectKey(e.Key)
			if !ok {
				// MetaExtension entries carry no data in value-projection.
				continue
			}
			entries = append(entries, ValueMapEntry{Key: key, Value: d.ToValue(e.Id)})
		}
		return ValueMap{Entries: entries}
	case *Hole:
		return ValueHole{Label: c.Label}
	}
	return ValueHole{}
}

func documentKeyToObjectKey(k DocumentKey) (path.ObjectKey, bool) {
	switch k.Kind {
	case KeyIdent:
		return path.StringKey(k.Ident), true
	case KeyValue:
		return k.Value, true
	case KeyTupleIndex:
		return path.IntKey(int64(k.Tuple)), true
	default: // KeyMetaExtension: discarded on projection
		return path.ObjectKey{}, false
	}
}

func projectPrimitive(v PrimitiveValue) Value {
	switch p := v.(type) {
	case PrimNull:
		return ValueNull{}
	case PrimBool:
		return ValueBool{Value: p.Value}
	case PrimInteger:
		return ValueInteger{Value: p.Value}
	case PrimF32:
		return ValueF32{Value: p.Value}
	case PrimF64:
		return ValueF64{Value: p.Value}
	case PrimText:
		return ValueText{Value: p.Value}
	case PrimPath:
		return ValuePath{Value: p.Value}
	case PrimVariant:
		return ValueVariant{Tag: p.Tag, Payload: p.Payload}
	}
	return ValueNull{}
}
