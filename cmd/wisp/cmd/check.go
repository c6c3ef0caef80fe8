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

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/rules"
)

func newCheckCmd(c *Command) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "run lint rules over the given files and print diagnostics",
		RunE: func(cc *cobra.Command, args []string) error {
			var total int
			for _, path := range args {
				diags, err := checkFile(c, path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				printDiagnostics(cc, diags)
				total += len(diags)
			}
			if total > 0 {
				return fmt.Errorf("wisp: found %d issue(s)", total)
			}
			return nil
		},
	}
}

func checkFile(c *Command, path string) ([]diagnostics.Error, error) {
	src, err := readFile(path)
	if err != nil {
		return nil, err
	}
	stmts, err := c.loader(path, src)
	if err != nil {
		return nil, err
	}
	return rules.Run(stmts, c.cfg.Style, c.cfg), nil
}
