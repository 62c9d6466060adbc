// Package main is the entry point for the glotscan CLI.
package main

import "glotscan.dev/pkg/glotscan/cmd"

func main() {
	cmd.Execute()
}
