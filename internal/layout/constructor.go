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

package layout

import (
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/path"
)

// NavEvent is one raw navigation event fed to Constructor.Navigate. Unlike
// path.Segment, a NavEvent can itself represent a stand-alone array-index
// marker (SPEC_FULL.md §4.2): the event stream emits the array index as a
// separate event from the segment it modifies, and Navigate is responsible
// for merging it into the previously navigated segment.
type NavEvent struct {
	ArrayIndex bool // true: this event is a stand-alone array-index marker
	HasIndex   bool // valid when ArrayIndex: explicit index vs. append
	Index      int  // valid when ArrayIndex && HasIndex
	Seg        path.Segment
}

func NavIdent(name string) NavEvent         { return NavEvent{Seg: path.Ident(name)} }
func NavExtension(name string) NavEvent     { return NavEvent{Seg: path.Extension(name)} }
func NavMetaExt(name string) NavEvent       { return NavEvent{Seg: path.MetaExt(name)} }
func NavValue(key path.ObjectKey) NavEvent  { return NavEvent{Seg: path.Value(key)} }
func NavTupleIndex(n int) NavEvent          { return NavEvent{Seg: path.TupleIndex(n)} }
func NavArrayIndex(index int) NavEvent      { return NavEvent{ArrayIndex: true, HasIndex: true, Index: index} }
func NavArrayAppend() NavEvent              { return NavEvent{ArrayIndex: true} }

type frameKind int

const (
	frameEureBlock frameKind = iota
	frameSectionItems
)

type frame struct {
	kind frameKind

	// frameEureBlock
	sourceId    SourceId
	savedPath   []SourcePathSegment
	savedTrivia []Trivia

	// frameSectionItems
	triviaBefore []Trivia
	path         []SourcePathSegment
	hasValue     bool
	value        document.NodeId
	bindings     []BindingSource
}

// Scope is the handle returned by Constructor.BeginScope, restored by the
// matching EndScope.
type Scope struct {
	node    document.NodeId
	pathLen int
}

// Constructor builds a document arena and its source-layout mirror from a
// linear event stream, one event per call (SPEC_FULL.md §4.2). The event
// set maps 1:1 onto the six grammar patterns described there; a host parser
// drives Constructor directly instead of building an intermediate AST.
type Constructor struct {
	doc     *document.Document
	sources []*EureSource

	builderStack []*frame

	pendingPath   []SourcePathSegment
	pendingTrivia []Trivia

	currentNode document.NodeId
	currentPath path.Path

	hasLastBoundNode bool
	lastBoundNode    document.NodeId

	hasLastBlockId bool
	lastBlockId    SourceId
}

// NewConstructor returns a Constructor ready to receive events, with the
// arena's root node as the initial current node.
func NewConstructor() *Constructor {
	doc := document.New()
	c := &Constructor{
		doc:         doc,
		sources:     []*EureSource{{}},
		currentNode: doc.RootId(),
	}
	c.builderStack = []*frame{{kind: frameEureBlock, sourceId: RootSourceId}}
	return c
}

// Finish consumes the constructor and returns the completed SourceDocument.
// Any trivia still pending becomes the root block's trailing trivia.
func (c *Constructor) Finish() *SourceDocument {
	if len(c.pendingTrivia) > 0 {
		c.sources[RootSourceId].TrailingTrivia = c.pendingTrivia
		c.pendingTrivia = nil
	}
	return NewSourceDocument(c.doc, c.sources)
}

// Document exposes the arena under construction.
func (c *Constructor) Document() *document.Document { return c.doc }

// CurrentNodeId returns the node the next bind_*/navigate call will act on.
func (c *Constructor) CurrentNodeId() document.NodeId { return c.currentNode }

// CurrentPath returns the arena path reaching the current node.
func (c *Constructor) CurrentPath() path.Path { return c.currentPath }

func (c *Constructor) topFrame() *frame {
	if len(c.builderStack) == 0 {
		return nil
	}
	return c.builderStack[len(c.builderStack)-1]
}

func (c *Constructor) popFrame() *frame {
	if len(c.builderStack) == 0 {
		return nil
	}
	f := c.builderStack[len(c.builderStack)-1]
	c.builderStack = c.builderStack[:len(c.builderStack)-1]
	return f
}

// currentSource finds the nearest enclosing EureBlock frame's block.
func (c *Constructor) currentSource() *EureSource {
	for i := len(c.builderStack) - 1; i >= 0; i-- {
		if c.builderStack[i].kind == frameEureBlock {
			return c.sources[c.builderStack[i].sourceId]
		}
	}
	return c.sources[RootSourceId]
}

// BeginScope captures the current node pointer and path depth.
func (c *Constructor) BeginScope() Scope {
	return Scope{node: c.currentNode, pathLen: len(c.currentPath)}
}

// EndScope restores the node pointer and path captured by BeginScope.
func (c *Constructor) EndScope(s Scope) error {
	c.currentNode = s.node
	if s.pathLen <= len(c.currentPath) {
		c.currentPath = c.currentPath[:s.pathLen]
	}
	return nil
}

// Navigate resolves one event against the arena and records it in the
// pending source path (SPEC_FULL.md §4.2 "Navigation in the constructor").
func (c *Constructor) Navigate(ev NavEvent) (document.NodeId, error) {
	if ev.ArrayIndex {
		if len(c.currentPath) == 0 {
			return document.NoNode, &ConstructorError{Kind: StandaloneArrayIndex, At: c.currentPath}
		}
		attr := path.Array{Present: true, HasIndex: ev.HasIndex, Index: ev.Index}
		last := c.currentPath[len(c.currentPath)-1]
		last.Array = attr
		soFar := append(path.Path{}, c.currentPath[:len(c.currentPath)-1]...)
		soFar = append(soFar, last)

		id, err := c.doc.StepArray(c.currentNode, attr, soFar)
		if err != nil {
			return document.NoNode, err
		}
		c.currentPath = soFar
		c.currentNode = id
		if len(c.pendingPath) > 0 {
			c.pendingPath[len(c.pendingPath)-1].Array = attr
		}
		return id, nil
	}

	soFar := c.currentPath.Append(ev.Seg)
	id, err := c.doc.Step(c.currentNode, ev.Seg, soFar)
	if err != nil {
		return document.NoNode, err
	}
	c.currentPath = soFar
	c.currentNode = id
	c.pendingPath = append(c.pendingPath, pathSegmentToSource(ev.Seg))
	return id, nil
}

func pathSegmentToSource(seg path.Segment) SourcePathSegment {
	switch seg.Kind {
	case path.KindValue:
		return SourcePathSegment{Kind: seg.Kind, Key: ObjectKeyToSourceKey(seg.Value)}
	case path.KindTupleIndex:
		return SourcePathSegment{Kind: seg.Kind, Tuple: seg.Tuple}
	default: // KindIdent, KindExtension, KindMetaExt
		return SourcePathSegment{Kind: seg.Kind, Ident: seg.Ident}
	}
}

// RequireHole asserts that the current node carries no content yet.
func (c *Constructor) RequireHole() error {
	n := c.doc.Node(c.currentNode)
	switch n.Content.(type) {
	case document.Uninitialized:
		return nil
	case *document.Map:
		if n.Content.(*document.Map).Len() == 0 {
			return nil
		}
	}
	return &document.InsertError{Kind: document.AlreadyAssigned, At: c.currentPath}
}

func (c *Constructor) bind(content document.Content) error {
	if err := c.doc.AssignContent(c.currentNode, content, c.currentPath); err != nil {
		return err
	}
	c.hasLastBoundNode = true
	c.lastBoundNode = c.currentNode
	return nil
}

// BindPrimitive binds a primitive value to the current node.
func (c *Constructor) BindPrimitive(v document.PrimitiveValue) error {
	return c.bind(document.Primitive{Value: v})
}

// BindHole binds an explicit, optionally labeled hole to the current node.
func (c *Constructor) BindHole(label *string) error {
	return c.bind(&document.Hole{Label: label})
}

// BindEmptyMap binds an empty map to the current node.
func (c *Constructor) BindEmptyMap() error { return c.bind(&document.Map{}) }

// BindEmptyArray binds an empty array to the current node.
func (c *Constructor) BindEmptyArray() error { return c.bind(&document.Array{}) }

// BindEmptyTuple binds an empty tuple to the current node.
func (c *Constructor) BindEmptyTuple() error { return c.bind(&document.Tuple{}) }

// BeginEureBlock enters a `{ ... }` body, saving the pending path/trivia of
// the enclosing binding/section and starting a fresh accumulation for the
// nested block (patterns #2/#3/#5/#6).
func (c *Constructor) BeginEureBlock() {
	id := SourceId(len(c.sources))
	c.sources = append(c.sources, &EureSource{})
	c.builderStack = append(c.builderStack, &frame{
		kind:        frameEureBlock,
		sourceId:    id,
		savedPath:   c.pendingPath,
		savedTrivia: c.pendingTrivia,
	})
	c.pendingPath = nil
	c.pendingTrivia = nil
}

// SetBlockValue attaches the value of the immediately preceding bind_* call
// as the current block's `{ = value ... }` value (patterns #3/#6).
func (c *Constructor) SetBlockValue() error {
	if !c.hasLastBoundNode {
		return &ConstructorError{Kind: MissingBindBeforeSetBlockValue, At: c.currentPath}
	}
	v := c.lastBoundNode
	c.currentSource().BlockValue = &v
	c.hasLastBoundNode = false
	return nil
}

// EndEureBlock closes the block opened by BeginEureBlock, restoring the
// enclosing pending path/trivia and recording the block id for the
// following end_binding_block/end_section_block call.
func (c *Constructor) EndEureBlock() error {
	top := c.topFrame()
	if top == nil || top.kind != frameEureBlock {
		return &ConstructorError{Kind: InvalidBuilderStackForEndEureBlock, At: c.currentPath}
	}
	c.popFrame()

	if len(c.pendingTrivia) > 0 {
		c.sources[top.sourceId].TrailingTrivia = c.pendingTrivia
	}
	c.pendingPath = top.savedPath
	c.pendingTrivia = top.savedTrivia
	c.lastBlockId = top.sourceId
	c.hasLastBlockId = true
	return nil
}

// BeginBinding starts a `path = value` / `path { ... }` statement.
func (c *Constructor) BeginBinding() { c.pendingPath = nil }

func (c *Constructor) appendBinding(b BindingSource) {
	if top := c.topFrame(); top != nil && top.kind == frameSectionItems {
		top.bindings = append(top.bindings, b)
		return
	}
	cs := c.currentSource()
	cs.Bindings = append(cs.Bindings, b)
}

// EndBindingValue finalizes pattern #1: `path = value`.
func (c *Constructor) EndBindingValue() error {
	if !c.hasLastBoundNode {
		return &ConstructorError{Kind: MissingBindBeforeEndBindingValue, At: c.currentPath}
	}
	c.appendBinding(BindingSource{
		TriviaBefore: c.pendingTrivia,
		Path:         c.pendingPath,
		Kind:         BindingValue,
		Value:        c.lastBoundNode,
	})
	c.hasLastBoundNode = false
	c.pendingPath = nil
	c.pendingTrivia = nil
	return nil
}

// EndBindingBlock finalizes patterns #2/#3: `path { ... }`.
func (c *Constructor) EndBindingBlock() error {
	if !c.hasLastBlockId {
		return &ConstructorError{Kind: MissingEndEureBlockBeforeEndBindingBlock, At: c.currentPath}
	}
	c.appendBinding(BindingSource{
		TriviaBefore: c.pendingTrivia,
		Path:         c.pendingPath,
		Kind:         BindingBlock,
		Block:        c.lastBlockId,
	})
	c.hasLastBlockId = false
	c.pendingPath = nil
	c.pendingTrivia = nil
	return nil
}

// BeginSection starts an `@ path ...` statement.
func (c *Constructor) BeginSection() { c.pendingPath = nil }

// BeginSectionItems starts pattern #4's items body, optionally consuming a
// bind_* result from just before this call as the section's initial value.
func (c *Constructor) BeginSectionItems() {
	f := &frame{
		kind:         frameSectionItems,
		triviaBefore: c.pendingTrivia,
		path:         c.pendingPath,
	}
	if c.hasLastBoundNode {
		f.hasValue = true
		f.value = c.lastBoundNode
		c.hasLastBoundNode = false
	}
	c.builderStack = append(c.builderStack, f)
	c.pendingPath = nil
	c.pendingTrivia = nil
}

// EndSectionItems finalizes pattern #4.
func (c *Constructor) EndSectionItems() error {
	top := c.topFrame()
	if top == nil || top.kind != frameSectionItems {
		return &ConstructorError{Kind: InvalidBuilderStackForEndSectionItems, At: c.currentPath}
	}
	c.popFrame()
	c.currentSource().Sections = append(c.currentSource().Sections, SectionSource{
		TriviaBefore: top.triviaBefore,
		Path:         top.path,
		Kind:         SectionItems,
		HasValue:     top.hasValue,
		Value:        top.value,
		Bindings:     top.bindings,
	})
	return nil
}

// EndSectionBlock finalizes patterns #5/#6: `@ path { ... }`.
func (c *Constructor) EndSectionBlock() error {
	if !c.hasLastBlockId {
		return &ConstructorError{Kind: MissingEndEureBlockBeforeEndSectionBlock, At: c.currentPath}
	}
	c.currentSource().Sections = append(c.currentSource().Sections, SectionSource{
		TriviaBefore: c.pendingTrivia,
		Path:         c.pendingPath,
		Kind:         SectionBlock,
		Block:        c.lastBlockId,
	})
	c.hasLastBlockId = false
	c.pendingPath = nil
	c.pendingTrivia = nil
	return nil
}

// Comment appends a comment to the pending trivia.
func (c *Constructor) Comment(cm Comment) { c.pendingTrivia = append(c.pendingTrivia, TriviaComment{Comment: cm}) }

// BlankLine appends a blank line to the pending trivia.
func (c *Constructor) BlankLine() { c.pendingTrivia = append(c.pendingTrivia, TriviaBlankLine{}) }

// AddTrivia appends an arbitrary Trivia value to the pending trivia.
func (c *Constructor) AddTrivia(t Trivia) { c.pendingTrivia = append(c.pendingTrivia, t) }
