// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/strutkit/strut"
	"github.com/strutkit/strut/internal/treetest"
)

var runTable bool

var runCmd = &cobra.Command{
	Use:   "run <script-file>",
	Short: "execute a forest mutation script",
	Long: `
Executes a forest mutation script (one operation per line; see the treetest
package for the operation grammar) and prints the outputs of the operations.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		r := treetest.NewRunner()
		fmt.Print(r.RunScript(string(script)))
		if runTable {
			printTable(r)
		}
		return nil
	},
}

// printTable renders one row per live node with its name, adjacency, state
// and style.
func printTable(r *treetest.Runner) {
	f := r.Forest()
	names := r.Names()

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"ID", "Name", "Children", "Parents", "State", "Style"})
	for id := strut.NodeID(0); int(id) < f.Len(); id++ {
		n := f.Node(id)
		state := "clean"
		if n.Dirty {
			state = "dirty"
		}
		tbl.Append([]string{
			id.String(),
			names[id],
			formatNames(names, f.Children(id)),
			formatNames(names, f.Parents(id)),
			state,
			n.Style.String(),
		})
	}
	tbl.Render()
}

func formatNames(names []string, ids []strut.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = names[id]
	}
	return strings.Join(parts, " ")
}
