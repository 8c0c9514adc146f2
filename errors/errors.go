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

// Package errors defines the shared error type used across the arena,
// source constructor, schema extractor and validator.
//
// All failure modes in this module are values, never panics (see
// SPEC_FULL.md §7). The constructor and extractor short-circuit on the
// first fatal [Error]; the validator accumulates many into a [List].
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/eure-lang/eure/token"
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Error is the common error interface produced by this module. In addition
// to the plain error interface it reports the document path at which the
// failure occurred and, where known, a source position.
type Error interface {
	error

	// Path returns the document path segments (rendered, e.g. "a.b[3]")
	// leading to the point of failure. Empty if not associated with a path.
	Path() []string

	// Position reports the primary source position of the error, if known.
	Position() token.Position
}

// posError is the concrete Error implementation used throughout the module.
type posError struct {
	pos  token.Position
	path []string
	msg  string
}

func (e *posError) Error() string {
	if len(e.path) == 0 {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", strings.Join(e.path, "."), e.msg)
}

func (e *posError) Path() []string          { return e.path }
func (e *posError) Position() token.Position { return e.pos }

// Newf creates an Error with the associated path and message.
func Newf(path []string, format string, args ...interface{}) Error {
	return &posError{path: path, msg: fmt.Sprintf(format, args...)}
}

// NewAt creates an Error with an associated source position, path and message.
func NewAt(pos token.Position, path []string, format string, args ...interface{}) Error {
	return &posError{pos: pos, path: path, msg: fmt.Sprintf(format, args...)}
}

// bareMessager is implemented by errors that can report their message
// without the path prefix Error() adds.
type bareMessager interface {
	bareMessage() string
}

func (e *posError) bareMessage() string { return e.msg }

// WithPath returns err with its path replaced, preserving message and
// position. Used by callers that catch an error one level up the
// traversal and need to extend the path prefix (SPEC_FULL.md §7:
// "constructor errors name the missing/extra event and include the current
// path").
func WithPath(err Error, path []string) Error {
	msg := err.Error()
	if bm, ok := err.(bareMessager); ok {
		msg = bm.bareMessage()
	}
	return &posError{pos: err.Position(), path: path, msg: msg}
}

// List is an accumulating, sortable collection of Errors, used by the
// validator to report every violation in one pass instead of stopping at
// the first (SPEC_FULL.md §7 propagation policy).
type List []Error

// Add appends err to the list if non-nil.
func (l *List) Add(err Error) {
	if err != nil {
		*l = append(*l, err)
	}
}

// AddAll appends every error in other.
func (l *List) AddAll(other List) {
	*l = append(*l, other...)
}

// Len, Err and sorting support make List convenient to use as a plain error
// as well as a structured collection.
func (l List) Len() int { return len(l) }

// Err returns nil if the list is empty, the sole error if it has one
// element, or the list itself (satisfying error) otherwise.
func (l List) Err() error {
	switch len(l) {
	case 0:
		return nil
	case 1:
		return l[0]
	default:
		return l
	}
}

func (l List) Error() string {
	switch len(l) {
	case 0:
		return ""
	case 1:
		return l[0].Error()
	}
	var b strings.Builder
	for i, e := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Error())
	}
	return b.String()
}

// Sort orders the list by path, for deterministic output across runs.
func (l List) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return strings.Join(l[i].Path(), ".") < strings.Join(l[j].Path(), ".")
	})
}
