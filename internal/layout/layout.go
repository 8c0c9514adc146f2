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

// Package layout builds the source-layout mirror alongside the document
// arena (SPEC_FULL.md §3.4, §4.2): an ordered forest of EureSource blocks
// recording bindings, sections and trivia, which is the single source of
// truth for round-trip printing. It follows the same
// interface-plus-concrete-types idiom the teacher uses for cue/ast: a
// closed node set, walked and printed rather than interpreted.
package layout

import (
	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/path"
)

// SourceId indexes into a SourceDocument's arena of EureSource blocks.
type SourceId int

// RootSourceId is the id of the document's top-level block.
const RootSourceId SourceId = 0

// Comment is one leading `#` or `##` line.
type Comment struct {
	Text  string
	Block bool // true for a "##" doc-comment, false for a plain "#" comment
}

// Trivia is either a Comment or a blank line, attached to the following
// binding/section as TriviaBefore.
type Trivia interface {
	trivia()
}

type TriviaComment struct{ Comment Comment }

func (TriviaComment) trivia() {}

type TriviaBlankLine struct{}

func (TriviaBlankLine) trivia() {}

// SourceKey mirrors an arena ObjectKey using the smallest lossless surface
// form (SPEC_FULL.md §4.2 "Key conversion"): a valid identifier renders
// unquoted, anything else is quoted; integers that fit 64 bits render bare,
// larger magnitudes render as a quoted decimal string; tuples recurse.
type SourceKey struct {
	Ident      string
	HasIdent   bool
	Quoted     string
	HasQuoted  bool
	Integer    int64
	HasInteger bool
	Tuple      []SourceKey
}

// ObjectKeyToSourceKey converts an arena ObjectKey to its rendered form.
func ObjectKeyToSourceKey(k path.ObjectKey) SourceKey {
	switch {
	case k.IsString():
		if isPlainIdent(k.String()) {
			return SourceKey{Ident: k.String(), HasIdent: true}
		}
		return SourceKey{Quoted: k.String(), HasQuoted: true}
	case k.IsInt():
		return SourceKey{Integer: k.Int(), HasInteger: true}
	default:
		parts := k.Tuple()
		out := make([]SourceKey, len(parts))
		for i, p := range parts {
			out[i] = ObjectKeyToSourceKey(p)
		}
		return SourceKey{Tuple: out}
	}
}

func isPlainIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
		isDigit := r >= '0' && r <= '9'
		if i == 0 && !isAlpha {
			return false
		}
		if i > 0 && !isAlpha && !isDigit {
			return false
		}
	}
	return true
}

// SourcePathSegment is one rendered step of a binding/section header path.
type SourcePathSegment struct {
	Kind  path.Kind
	Ident string // KindIdent, KindExtension, KindMetaExt
	Key   SourceKey
	Tuple int // KindTupleIndex
	Array path.Array
}

// BindingKind discriminates a binding's grammar pattern.
type BindingKind int

const (
	// BindingValue is pattern #1: `path = value`.
	BindingValue BindingKind = iota
	// BindingBlock is pattern #2/#3: `path { body }` / `path { = value body }`.
	BindingBlock
)

// BindingSource is one `path = value` or `path { ... }` statement.
type BindingSource struct {
	TriviaBefore []Trivia
	Path         []SourcePathSegment
	Kind         BindingKind
	Value        document.NodeId // valid for BindingValue
	Block        SourceId        // valid for BindingBlock
}

// SectionKind discriminates a section's grammar pattern.
type SectionKind int

const (
	// SectionItems is pattern #4: `@ path` followed by loose bindings.
	SectionItems SectionKind = iota
	// SectionBlock is pattern #5/#6: `@ path { body }` / `@ path { = value body }`.
	SectionBlock
)

// SectionSource is one `@ path ...` statement.
type SectionSource struct {
	TriviaBefore []Trivia
	Path         []SourcePathSegment
	Kind         SectionKind
	HasValue     bool            // true if Value is meaningful (SectionItems only)
	Value        document.NodeId // optional initial value, SectionItems only
	Bindings     []BindingSource // nested bindings, SectionItems only
	Block        SourceId        // valid for SectionBlock
}

// EureSource is one block of the source-layout forest: the root block, or
// the body of a `{ ... }` binding/section.
type EureSource struct {
	Bindings       []BindingSource
	Sections       []SectionSource
	BlockValue     *document.NodeId // set via set_block_value, patterns #3/#6
	LeadingTrivia  []Trivia
	TrailingTrivia []Trivia
}

// SourceDocument pairs the document arena with its source-layout forest.
type SourceDocument struct {
	Doc     *document.Document
	Sources []*EureSource
}

// NewSourceDocument builds a SourceDocument from a finished arena and the
// block arena accumulated by a Constructor.
func NewSourceDocument(doc *document.Document, sources []*EureSource) *SourceDocument {
	return &SourceDocument{Doc: doc, Sources: sources}
}

// Root returns the top-level EureSource block.
func (s *SourceDocument) Root() *EureSource { return s.Sources[RootSourceId] }
