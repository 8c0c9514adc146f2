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
	"fmt"

	"github.com/eure-lang/eure/path"
	"github.com/eure-lang/eure/token"
)

// ConstructorErrorKind discriminates the builder-stack/event-ordering
// errors a Constructor can report (SPEC_FULL.md §4.2 "Error model").
type ConstructorErrorKind int

const (
	MissingBindBeforeEndBindingValue ConstructorErrorKind = iota
	MissingBindBeforeSetBlockValue
	MissingEndEureBlockBeforeEndBindingBlock
	MissingEndEureBlockBeforeEndSectionBlock
	InvalidBuilderStackForEndEureBlock
	InvalidBuilderStackForEndSectionItems
	StandaloneArrayIndex
)

func (k ConstructorErrorKind) String() string {
	switch k {
	case MissingBindBeforeEndBindingValue:
		return "missing bind before end_binding_value"
	case MissingBindBeforeSetBlockValue:
		return "missing bind before set_block_value"
	case MissingEndEureBlockBeforeEndBindingBlock:
		return "missing end_eure_block before end_binding_block"
	case MissingEndEureBlockBeforeEndSectionBlock:
		return "missing end_eure_block before end_section_block"
	case InvalidBuilderStackForEndEureBlock:
		return "invalid builder stack for end_eure_block"
	case InvalidBuilderStackForEndSectionItems:
		return "invalid builder stack for end_section_items"
	case StandaloneArrayIndex:
		return "array index with no preceding path segment"
	default:
		return "constructor error"
	}
}

// ConstructorError is the event-stream error type. It implements
// github.com/eure-lang/eure/errors.Error.
type ConstructorError struct {
	Kind ConstructorErrorKind
	At   path.Path
}

func (e *ConstructorError) Error() string {
	if len(e.At) == 0 {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.At, e.Kind.String())
}

func (e *ConstructorError) Path() []string           { return e.At.Strings() }
func (e *ConstructorError) Position() token.Position { return token.NoPos }
