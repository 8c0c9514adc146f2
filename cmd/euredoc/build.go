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
	"fmt"
	"strings"

	"github.com/eure-lang/eure/internal/document"
	"github.com/eure-lang/eure/internal/source"
	"github.com/eure-lang/eure/path"
	"github.com/spf13/cobra"
)

// newBuildCmd creates the build command.
func newBuildCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <data.json>",
		Short: "build a document arena from a JSON file and print its projected value",
		Long: `build reads a JSON file, replays its shape into a document arena one
field at a time (as if each key and array element were an authored event),
and prints the resulting document.Value tree.

Example:

	euredoc build config.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			verbose, _ := cc.Flags().GetBool("verbose")
			if verbose {
				c.log.Info("building document", "file", args[0])
			}
			doc, err := buildFromJSON(source.NewFileSource(args[0]))
			if err != nil {
				return err
			}
			c.log.Info("document built", "file", args[0])
			fmt.Fprintln(cc.OutOrStdout(), renderValue(doc.ToValue(doc.RootId()), 0))
			return nil
		},
	}
	return cmd
}

// renderKey renders a map entry's ObjectKey; every key this CLI's own JSON
// builder produces is a string, but the fallback cases are cheap to cover.
func renderKey(k path.ObjectKey) string {
	switch {
	case k.IsString():
		return k.String()
	case k.IsInt():
		return fmt.Sprintf("%d", k.Int())
	default:
		parts := make([]string, len(k.Tuple()))
		for i, t := range k.Tuple() {
			parts[i] = renderKey(t)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
}

// renderValue is a minimal indented rendering of a document.Value tree, for
// human inspection rather than round-tripping.
func renderValue(v document.Value, indent int) string {
	pad := func(n int) string { return fmt.Sprintf("%*s", n*2, "") }
	switch t := v.(type) {
	case document.ValueNull:
		return "null"
	case document.ValueBool:
		return fmt.Sprintf("%v", t.Value)
	case document.ValueInteger:
		return t.Value.String()
	case document.ValueF32:
		return fmt.Sprintf("%v", t.Value)
	case document.ValueF64:
		return fmt.Sprintf("%v", t.Value)
	case document.ValueText:
		return fmt.Sprintf("%q", t.Value)
	case document.ValuePath:
		return t.Value.String()
	case document.ValueVariant:
		return fmt.Sprintf("%s(%s)", t.Tag, renderValue(t.Payload, indent))
	case document.ValueHole:
		return "<hole>"
	case document.ValueArray:
		out := "[\n"
		for _, el := range t.Elements {
			out += pad(indent+1) + renderValue(el, indent+1) + "\n"
		}
		return out + pad(indent) + "]"
	case document.ValueTuple:
		out := "(\n"
		for _, el := range t.Elements {
			out += pad(indent+1) + renderValue(el, indent+1) + "\n"
		}
		return out + pad(indent) + ")"
	case document.ValueMap:
		out := "{\n"
		for _, e := range t.Entries {
			out += pad(indent+1) + renderKey(e.Key) + " = " + renderValue(e.Value, indent+1) + "\n"
		}
		return out + pad(indent) + "}"
	default:
		return fmt.Sprintf("%v", v)
	}
}
