// Copyright 2018 The CUE Authors
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

// Package cmd implements the wisp command-line surface: a "check"
// subcommand that runs the lint rules and prints diagnostics, and a "fix"
// subcommand that applies their non-conflicting autofixes. All flag
// parsing lives here; rule dispatch lives in the rules package and
// formatting preferences live in config, so this package is wiring only.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/config"
	"github.com/wisplang/wisp/diagnostics"
)

// Command wraps the active cobra command the way cmd/cue's own Command
// type does, so subcommands can reach shared state (the resolved config,
// the injected Loader) without a package-level global.
type Command struct {
	*cobra.Command

	loader Loader
	cfg    *config.Config
}

// New builds the root command with args already set, ready for Run.
func New(args []string, loader Loader) *Command {
	if loader == nil {
		loader = defaultLoader
	}
	c := &Command{loader: loader}

	root := &cobra.Command{
		Use:           "wisp",
		Short:         "lint and autofix wisp source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cc *cobra.Command, _ []string) error {
			dir, _ := os.Getwd()
			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			c.cfg = cfg
			return nil
		},
	}
	root.AddCommand(newCheckCmd(c))
	root.AddCommand(newFixCmd(c))
	root.SetArgs(args)
	c.Command = root
	return c
}

// Main runs the wisp tool and returns the code for passing to os.Exit.
// loader is nil in the build shipped by this repository (see
// ErrNoParser); an embedder linking its own parser passes a real one.
func Main(loader Loader) int {
	c := New(os.Args[1:], loader)
	if err := c.Execute(); err != nil {
		diagnostics.Print(os.Stderr, err, nil)
		return 1
	}
	return 0
}

// printDiagnostics writes every diagnostic in errs to w, one per line, as
// "position: [code] message".
func printDiagnostics(w *cobra.Command, errs []diagnostics.Error) {
	for _, e := range errs {
		fmt.Fprintf(w.OutOrStdout(), "%s: [%s] %s\n", e.Position(), e.Code(), e.Error())
	}
}
