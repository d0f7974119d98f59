// Package main is the entry point for the loxcheck CLI.
package main

import "loxcheck.dev/pkg/loxcheck/cmd"

func main() {
	cmd.Execute()
}
