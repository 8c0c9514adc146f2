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

// Package path defines the segment and path types shared by the document
// arena, the source constructor, the schema extractor and the validator
// (SPEC_FULL.md §3.1).
//
// A Path is an ordered sequence of Segments. ArrayIndex is special: it is
// never a stand-alone segment. It always merges into the array attribute
// of the segment immediately preceding it (see Segment.Array below); a
// caller that appends an ArrayIndex with no preceding segment has made a
// StandaloneArrayIndex error, which this package neither detects nor
// constructs (that's the constructor's job, since only it knows about the
// event sequence that produced the mistake).
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variant of a Segment's key.
type Kind int

const (
	// KindIdent is a named field under a map.
	KindIdent Kind = iota
	// KindExtension is a metadata slot attached to a node, spelled $name.
	KindExtension
	// KindMetaExt is a schema/meta field attached at document-key level,
	// spelled $$name.
	KindMetaExt
	// KindValue is an arbitrary object key (string, number, or tuple of keys).
	KindValue
	// KindTupleIndex is a 0-based slot of a tuple value, 0-255.
	KindTupleIndex
)

func (k Kind) String() string {
	switch k {
	case KindIdent:
		return "ident"
	case KindExtension:
		return "extension"
	case KindMetaExt:
		return "meta-extension"
	case KindValue:
		return "value"
	case KindTupleIndex:
		return "tuple-index"
	default:
		return "unknown"
	}
}

// ObjectKey is an arbitrary key for Value segments and Map entries: a
// string, a 64-bit-representable integer, or a tuple of further keys.
type ObjectKey struct {
	str    string
	hasStr bool
	num    int64
	hasNum bool
	tuple  []ObjectKey
}

// StringKey builds an ObjectKey from a string.
func StringKey(s string) ObjectKey { return ObjectKey{str: s, hasStr: true} }

// IntKey builds an ObjectKey from an integer.
func IntKey(n int64) ObjectKey { return ObjectKey{num: n, hasNum: true} }

// TupleKey builds a composite ObjectKey from further keys.
func TupleKey(keys ...ObjectKey) ObjectKey { return ObjectKey{tuple: keys} }

// IsString reports whether the key holds a string.
func (k ObjectKey) IsString() bool { return k.hasStr }

// IsInt reports whether the key holds an integer.
func (k ObjectKey) IsInt() bool { return k.hasNum }

// IsTuple reports whether the key holds a tuple of further keys.
func (k ObjectKey) IsTuple() bool { return !k.hasStr && !k.hasNum }

// String returns the string value; valid only if IsString.
func (k ObjectKey) String() string { return k.str }

// Int returns the integer value; valid only if IsInt.
func (k ObjectKey) Int() int64 { return k.num }

// Tuple returns the component keys; valid only if IsTuple.
func (k ObjectKey) Tuple() []ObjectKey { return k.tuple }

// Equal reports structural equality between two keys.
func (k ObjectKey) Equal(o ObjectKey) bool {
	if k.hasStr != o.hasStr || k.hasNum != o.hasNum {
		return false
	}
	if k.hasStr {
		return k.str == o.str
	}
	if k.hasNum {
		return k.num == o.num
	}
	if len(k.tuple) != len(o.tuple) {
		return false
	}
	for i := range k.tuple {
		if !k.tuple[i].Equal(o.tuple[i]) {
			return false
		}
	}
	return true
}

func (k ObjectKey) render() string {
	switch {
	case k.hasStr:
		return strconv.Quote(k.str)
	case k.hasNum:
		return strconv.FormatInt(k.num, 10)
	default:
		parts := make([]string, len(k.tuple))
		for i, t := range k.tuple {
			parts[i] = t.render()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
}

// Array is the array attribute that may be attached to an Ident, Value or
// Extension segment (SPEC_FULL.md §3.1: "ArrayIndex ... is merged with the
// preceding segment's array attribute, not stored as an independent step").
//
// Present reports whether the segment is followed by `[...]` at all;
// HasIndex distinguishes an explicit index from an appending `[]`.
type Array struct {
	Present  bool
	HasIndex bool
	Index    int // valid only if HasIndex
}

// Segment is one step of a Path.
type Segment struct {
	Kind  Kind
	Ident string    // valid for KindIdent, KindExtension, KindMetaExt
	Value ObjectKey // valid for KindValue
	Tuple int       // valid for KindTupleIndex, 0-255
	Array Array
}

// Ident builds a plain Ident segment.
func Ident(name string) Segment { return Segment{Kind: KindIdent, Ident: name} }

// Extension builds an Extension ($name) segment.
func Extension(name string) Segment { return Segment{Kind: KindExtension, Ident: name} }

// MetaExt builds a MetaExt ($$name) segment.
func MetaExt(name string) Segment { return Segment{Kind: KindMetaExt, Ident: name} }

// Value builds a Value segment from an arbitrary object key.
func Value(key ObjectKey) Segment { return Segment{Kind: KindValue, Value: key} }

// TupleIndex builds a TupleIndex segment. n must be in [0, 255].
func TupleIndex(n int) Segment { return Segment{Kind: KindTupleIndex, Tuple: n} }

// WithIndex returns a copy of s with an explicit array index attached.
func (s Segment) WithIndex(index int) Segment {
	s.Array = Array{Present: true, HasIndex: true, Index: index}
	return s
}

// WithAppend returns a copy of s marked for array-append (ArrayIndex(None)).
func (s Segment) WithAppend() Segment {
	s.Array = Array{Present: true, HasIndex: false}
	return s
}

// String renders the segment in EURE surface syntax, ignoring any array
// attribute (callers render Path as a whole to place brackets correctly).
func (s Segment) String() string {
	switch s.Kind {
	case KindIdent:
		return s.Ident
	case KindExtension:
		return "$" + s.Ident
	case KindMetaExt:
		return "$$" + s.Ident
	case KindValue:
		return s.Value.render()
	case KindTupleIndex:
		return strconv.Itoa(s.Tuple)
	default:
		return "?"
	}
}

// Path is an ordered sequence of segments (SPEC_FULL.md §3.1).
type Path []Segment

// Append returns a new path with seg appended.
func (p Path) Append(seg Segment) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = seg
	return out
}

// String renders p in a "$.a.b[3].c" style, primarily for error messages
// (SPEC_FULL.md §7: validator errors "carry the value-path ... $.a.b[3].x
// form"). This is a diagnostic rendering, not a round-trip surface form.
func (p Path) String() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		if s.Kind == KindTupleIndex {
			fmt.Fprintf(&b, "[%d]", s.Tuple)
		} else {
			b.WriteByte('.')
			b.WriteString(s.String())
		}
		if s.Array.Present {
			if s.Array.HasIndex {
				fmt.Fprintf(&b, "[%d]", s.Array.Index)
			} else {
				b.WriteString("[]")
			}
		}
	}
	return b.String()
}

// Strings renders each segment (with its array attribute) as one string,
// suitable for errors.Error's Path() return value.
func (p Path) Strings() []string {
	out := make([]string, len(p))
	for i, s := range p {
		str := s.String()
		if s.Array.Present {
			if s.Array.HasIndex {
				str += fmt.Sprintf("[%d]", s.Array.Index)
			} else {
				str += "[]"
			}
		}
		out[i] = str
	}
	return out
}
