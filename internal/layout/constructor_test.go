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
	"testing"

	"github.com/eure-lang/eure/internal/document"
	"github.com/go-quicktest/qt"
)

// buildBindingValue drives pattern #1: `name = "Alice"`.
func buildBindingValue(t *testing.T, c *Constructor, name, value string) {
	t.Helper()
	c.BeginBinding()
	scope := c.BeginScope()
	_, err := c.Navigate(NavIdent(name))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(c.BindPrimitive(document.PrimText{Value: value})))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))
	qt.Assert(t, qt.IsNil(c.EndBindingValue()))
}

func TestPattern1BindingValue(t *testing.T) {
	c := NewConstructor()
	buildBindingValue(t, c, "name", "Alice")

	sd := c.Finish()
	root := sd.Root()
	qt.Assert(t, qt.HasLen(root.Bindings, 1))
	qt.Assert(t, qt.Equals(root.Bindings[0].Kind, BindingValue))
	qt.Assert(t, qt.DeepEquals(sd.Doc.ToValue(root.Bindings[0].Value), document.Value(document.ValueText{Value: "Alice"})))
}

func TestPattern2BindingBlock(t *testing.T) {
	c := NewConstructor()

	c.BeginBinding()
	scope := c.BeginScope()
	_, err := c.Navigate(NavIdent("user"))
	qt.Assert(t, qt.IsNil(err))
	c.BeginEureBlock()
	buildBindingValue(t, c, "name", "Bob")
	qt.Assert(t, qt.IsNil(c.EndEureBlock()))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))
	qt.Assert(t, qt.IsNil(c.EndBindingBlock()))

	sd := c.Finish()
	root := sd.Root()
	qt.Assert(t, qt.HasLen(root.Bindings, 1))
	qt.Assert(t, qt.Equals(root.Bindings[0].Kind, BindingBlock))
	inner := sd.Sources[root.Bindings[0].Block]
	qt.Assert(t, qt.HasLen(inner.Bindings, 1))
	qt.Assert(t, qt.Equals(inner.Bindings[0].Path[0].Ident, "name"))
}

func TestPattern3BindingBlockWithValue(t *testing.T) {
	c := NewConstructor()

	c.BeginBinding()
	scope := c.BeginScope()
	_, err := c.Navigate(NavIdent("tagged"))
	qt.Assert(t, qt.IsNil(err))
	c.BeginEureBlock()
	qt.Assert(t, qt.IsNil(c.BindPrimitive(document.PrimText{Value: "root-value"})))
	qt.Assert(t, qt.IsNil(c.SetBlockValue()))
	// The block's node now holds a text value, so the inner binding goes
	// to an extension of it rather than to a data field.
	c.BeginBinding()
	inner := c.BeginScope()
	_, err = c.Navigate(NavExtension("extra"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(c.BindPrimitive(document.PrimText{Value: "x"})))
	qt.Assert(t, qt.IsNil(c.EndScope(inner)))
	qt.Assert(t, qt.IsNil(c.EndBindingValue()))
	qt.Assert(t, qt.IsNil(c.EndEureBlock()))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))
	qt.Assert(t, qt.IsNil(c.EndBindingBlock()))

	sd := c.Finish()
	blockId := sd.Root().Bindings[0].Block
	block := sd.Sources[blockId]
	qt.Assert(t, qt.IsNotNil(block.BlockValue))
	qt.Assert(t, qt.DeepEquals(sd.Doc.ToValue(*block.BlockValue), document.Value(document.ValueText{Value: "root-value"})))
}

func TestPattern4SectionItems(t *testing.T) {
	c := NewConstructor()

	c.BeginSection()
	scope := c.BeginScope()
	_, err := c.Navigate(NavIdent("users"))
	qt.Assert(t, qt.IsNil(err))
	_, err = c.Navigate(NavArrayAppend())
	qt.Assert(t, qt.IsNil(err))
	c.BeginSectionItems()
	buildBindingValue(t, c, "name", "Carol")
	qt.Assert(t, qt.IsNil(c.EndSectionItems()))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))

	sd := c.Finish()
	qt.Assert(t, qt.HasLen(sd.Root().Sections, 1))
	sec := sd.Root().Sections[0]
	qt.Assert(t, qt.Equals(sec.Kind, SectionItems))
	qt.Assert(t, qt.HasLen(sec.Bindings, 1))
}

func TestPattern5SectionBlock(t *testing.T) {
	c := NewConstructor()

	c.BeginSection()
	scope := c.BeginScope()
	_, err := c.Navigate(NavIdent("config"))
	qt.Assert(t, qt.IsNil(err))
	c.BeginEureBlock()
	buildBindingValue(t, c, "debug", "true")
	qt.Assert(t, qt.IsNil(c.EndEureBlock()))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))
	qt.Assert(t, qt.IsNil(c.EndSectionBlock()))

	sd := c.Finish()
	qt.Assert(t, qt.HasLen(sd.Root().Sections, 1))
	qt.Assert(t, qt.Equals(sd.Root().Sections[0].Kind, SectionBlock))
}

func TestStandaloneArrayIndexIsError(t *testing.T) {
	c := NewConstructor()
	c.BeginBinding()
	scope := c.BeginScope()
	_, err := c.Navigate(NavArrayAppend())
	qt.Assert(t, qt.IsNotNil(err))
	ce, ok := err.(*ConstructorError)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ce.Kind, StandaloneArrayIndex))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))
}

func TestEndBindingValueWithoutBindIsError(t *testing.T) {
	c := NewConstructor()
	c.BeginBinding()
	scope := c.BeginScope()
	_, err := c.Navigate(NavIdent("x"))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(c.EndScope(scope)))

	err = c.EndBindingValue()
	qt.Assert(t, qt.IsNotNil(err))
	ce, ok := err.(*ConstructorError)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(ce.Kind, MissingBindBeforeEndBindingValue))
}

func TestPendingTrivia(t *testing.T) {
	c := NewConstructor()
	c.Comment(Comment{Text: "hello"})
	c.BlankLine()
	buildBindingValue(t, c, "x", "1")

	sd := c.Finish()
	b := sd.Root().Bindings[0]
	qt.Assert(t, qt.HasLen(b.TriviaBefore, 2))
	_, isComment := b.TriviaBefore[0].(TriviaComment)
	qt.Assert(t, qt.IsTrue(isComment))
	_, isBlank := b.TriviaBefore[1].(TriviaBlankLine)
	qt.Assert(t, qt.IsTrue(isBlank))
}
