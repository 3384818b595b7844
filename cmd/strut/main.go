// Copyright 2025 The Strut Authors. All rights reserved. Use of this source
// code is governed by a BSD-style license that can be found in the LICENSE
// file.

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "strut [command] (flags)",
	Short: "strut layout-tree introspection tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		runCmd,
	)

	runCmd.Flags().BoolVarP(
		&runTable, "table", "t", false, "render the final forest as a table")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
