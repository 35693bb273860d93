// Package main is the entry point for the namespacer CLI.
package main

import "namespacer.dev/pkg/namespacer/cmd"

func main() {
	cmd.Execute()
}
