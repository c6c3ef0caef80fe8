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
	"os"
	"sort"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/diagnostics"
	"github.com/wisplang/wisp/rules"
)

func newFixCmd(c *Command) *cobra.Command {
	var write bool
	cc := &cobra.Command{
		Use:   "fix [files...]",
		Short: "apply non-conflicting autofixes to the given files",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				src, err := readFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				stmts, err := c.loader(path, src)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				diags := rules.Run(stmts, c.cfg.Style, c.cfg)
				fixed, applied, err := applyFixes(string(src), diags)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: applied %d fix(es)\n", path, applied)
				if write && applied > 0 {
					if err := os.WriteFile(path, []byte(fixed), 0o644); err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
				}
			}
			return nil
		},
	}
	cc.Flags().BoolVarP(&write, "write", "w", false, "write fixed output back to each file")
	return cc
}

// applyFixes applies every non-overlapping Fix among diags to src, in
// source order, and returns the rewritten text and the count applied.
// Two fixes overlap when their [Start, End) ranges intersect; the first
// one encountered (source order) wins and the later one is skipped, which
// is also how a diagnostic's own Fix.ID lets a caller recognize and drop
// a duplicate of a fix it already applied from the same diagnostic.
func applyFixes(src string, diags []diagnostics.Error) (string, int, error) {
	fixes := collectFixes(diags)
	sort.Slice(fixes, func(i, j int) bool {
		return fixes[i].Start.Position().Offset < fixes[j].Start.Position().Offset
	})

	var b []byte
	last := 0
	applied := 0
	seen := map[uuid.UUID]bool{}
	for _, f := range fixes {
		if seen[f.ID] {
			continue
		}
		start := f.Start.Position().Offset
		end := f.End.Position().Offset
		if start < last || start > len(src) || end > len(src) || end < start {
			continue // overlaps the previous fix, or out of range
		}
		b = append(b, src[last:start]...)
		b = append(b, f.Text...)
		last = end
		seen[f.ID] = true
		applied++
	}
	b = append(b, src[last:]...)
	return string(b), applied, nil
}

func collectFixes(diags []diagnostics.Error) []*diagnostics.Fix {
	var out []*diagnostics.Fix
	for _, d := range diags {
		if f := d.Fix(); f != nil {
			out = append(out, f)
		}
	}
	return out
}

