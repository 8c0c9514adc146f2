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

// Command euredoc is a small CLI demonstrating the document/schema/validate
// packages end to end: build an arena from a JSON file, extract a schema
// from one, or validate data against a schema.
package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Command wraps the currently active cobra command, mirroring how a single
// invocation threads shared state (here, a logger) to every subcommand.
type Command struct {
	*cobra.Command

	root *cobra.Command

	// session identifies this invocation in log output; it has no bearing
	// on the documents being built, only on correlating one run's log lines.
	session string
	log     *slog.Logger
}

// New builds the root command and wires every subcommand under it.
func New(args []string) (*Command, error) {
	cmd := &cobra.Command{
		Use:   "euredoc",
		Short: "build, extract, and validate EURE documents",

		SilenceErrors: true,
		SilenceUsage:  true,

		DisableSuggestions: true,
	}

	session := uuid.NewString()
	c := &Command{
		Command: cmd,
		root:    cmd,
		session: session,
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)).With(
			"session", session,
		),
	}

	addGlobalFlags(cmd.PersistentFlags())

	for _, sub := range []*cobra.Command{
		newBuildCmd(c),
		newSchemaCmd(c),
		newValidateCmd(c),
	} {
		cmd.AddCommand(sub)
	}

	cmd.SetArgs(args)
	return c, nil
}

func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP("verbose", "v", false, "log the input file before building (build command only)")
}

// Main runs euredoc with os.Args and returns a process exit code.
func Main() int {
	c, err := New(os.Args[1:])
	if err != nil {
		slog.Error("could not initialize command", "error", err)
		return 2
	}
	if err := c.root.Execute(); err != nil {
		c.log.Error(err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(Main())
}
