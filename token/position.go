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

// Package token defines the position type shared by the arena, the source
// constructor and the schema/validator packages.
//
// The lexer and parser that produce byte offsets are outside the scope of
// this module; this package only defines
// the lightweight position value that those external producers attach to
// events and that error values carry back to the caller.
package token

import "fmt"

// A Position describes a location in a source document. It is valid even
// when all fields are zero (NoPos); IsValid reports the difference.
type Position struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // line number, starting at 1
	Column   int // column number, starting at 1
}

// NoPos is the zero value of Position, representing an unknown location.
var NoPos = Position{}

// IsValid reports whether pos designates a known source line.
func (pos Position) IsValid() bool { return pos.Line > 0 }

// String renders pos as "file:line:column", "line:column", "file" or "-".
func (pos Position) String() string {
	s := pos.Filename
	if pos.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}
