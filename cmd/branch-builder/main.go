// Package main provides the CLI entrypoint for branch-builder.
//
// branch-builder compares an experiment configuration with its parent and
// resolves the search space conflicts between them:
//   - conflicts lists what differs after replaying the inline directives
//   - suggest proposes renames of missing dimensions onto new ones
//   - resolve applies a resolution script and prints the adapters
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
