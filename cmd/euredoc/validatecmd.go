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
	"github.com/eure-lang/eure/validate"
	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate command.
func newValidateCmd(c *Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema.json> <data.json>",
		Short: "validate a JSON data file against a schema extracted from another JSON file",
		Long: `validate builds two arenas: one from a schema-extension-shorthand JSON
file (as "euredoc schema" reads), and one from an ordinary JSON data file.
It extracts a schema from the first and checks the second against it,
printing every accumulated error and warning.

Example:

	euredoc validate user-schema.json alice.json
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cc *cobra.Command, args []string) error {
			schemaFile, dataFile := args[0], args[1]

			schemaDoc, err := buildFromJSON(source.NewFileSource(schemaFile))
			if err != nil {
				return fmt.Errorf("building schema document: %w", err)
			}
			sd, err := schema.DocumentToSchema(schemaDoc)
			if err != nil {
				return fmt.Errorf("extracting schema: %w", err)
			}

			dataDoc, err := buildFromJSON(source.NewFileSource(dataFile))
			if err != nil {
				return fmt.Errorf("building data document: %w", err)
			}

			c.log.Info("validating", "schema", schemaFile, "data", dataFile)
			result := validate.New(sd).Validate(dataDoc)

			out := cc.OutOrStdout()
			for _, e := range result.Errors {
				fmt.Fprintln(out, "error:", e.Error())
			}
			for _, w := range result.Warnings {
				fmt.Fprintln(out, "warning:", w.String())
			}
			fmt.Fprintf(out, "valid=%v complete=%v\n", result.IsValid(), result.IsComplete())

			if !result.IsValid() {
				c.log.Warn("validation failed", "errors", len(result.Errors))
				cc.SilenceUsage = true
				return fmt.Errorf("%d validation error(s)", len(result.Errors))
			}
			c.log.Info("validation passed")
			return nil
		},
	}
	return cmd
}
