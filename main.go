// Package main is the entry point for the verify CLI.
package main

import "verify.dev/pkg/verify/cmd"

func main() {
	cmd.Execute()
}
