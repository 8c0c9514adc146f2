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

	"github.com/eure-lang/eure/internal/source"
	"github.com/eure-lang/eure/schema"
	"github.com/spf13/cobra"
)

// newSchemaCmd creates the schema command.
func newSchemaCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema <schema.json>",
		Short: "extract a schema from a JSON file written in schema-extension shorthand",
		Long: `schema reads a JSON file whose records carry the same $variant,
$types, and other extension fields the schema-extraction language reads
from an ordinary document's node extensions, builds the arena, and prints
the extracted schema graph's shape.

Example:

	euredoc schema user-schema.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			c.log.Info("extracting schema", "file", args[0])
			doc, err := buildFromJSON(source.NewFileSource(args[0]))
			if err != nil {
				return err
			}
			sd, err := schema.DocumentToSchema(doc)
			if err != nil {
				return fmt.Errorf("extracting schema: %w", err)
			}
			c.log.Info("schema extracted", "types", len(sd.Types))
			fmt.Fprintln(cc.OutOrStdout(), renderSchema(sd.Root, 0))
			if len(sd.Types) > 0 {
				fmt.Fprintln(cc.OutOrStdout(), "\nnamed types:")
				for name, s := range sd.Types {
					fmt.Fprintf(cc.OutOrStdout(), "  %s: %s\n", name, renderSchema(s, 1))
				}
			}
			return nil
		},
	}
	return cmd
}

// renderSchema is a minimal indented rendering of a schema.Schema tree, for
// human inspection.
func renderSchema(s *schema.Schema, indent int) string {
	if s == nil {
		return "<nil>"
	}
	pad := func(n int) string { return fmt.Sprintf("%*s", n*2, "") }
	switch s.Kind {
	case schema.KindRecord:
		out := "record {\n"
		for _, f := range s.Record.Fields {
			opt := ""
			if f.Optional {
				opt = "?"
			}
			out += pad(indent+1) + f.Name + opt + ": " + renderSchema(f.Schema, indent+1) + "\n"
		}
		return out + pad(indent) + "}"
	case schema.KindArray:
		return "array<" + renderSchema(s.Array.Item, indent) + ">"
	case schema.KindMap:
		return "map<" + renderSchema(s.Map.Key, indent) + ", " + renderSchema(s.Map.Value, indent) + ">"
	case schema.KindTuple:
		out := "("
		for i, e := range s.Tuple.Elements {
			if i > 0 {
				out += ", "
			}
			out += renderSchema(e, indent)
		}
		return out + ")"
	case schema.KindUnion:
		out := "union {\n"
		for _, v := range s.Union.Variants {
			out += pad(indent+1) + v.Name + ": " + renderSchema(v.Schema, indent+1) + "\n"
		}
		return out + pad(indent) + "}"
	case schema.KindReference:
		return "ref(" + s.Reference.Namespace + "." + s.Reference.Name + ")"
	case schema.KindText:
		return "text"
	case schema.KindInteger:
		return "integer"
	case schema.KindFloat:
		return "float"
	case schema.KindBoolean:
		return "boolean"
	case schema.KindNull:
		return "null"
	case schema.KindPath:
		return "path"
	case schema.KindLiteral:
		return "literal"
	case schema.KindAny:
		return "any"
	default:
		return "unknown"
	}
}
