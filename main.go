// Package main is the entry point for the traitpack CLI.
package main

import "traitpack.dev/pkg/traitpack/cmd"

func main() {
	cmd.Execute()
}
