// Package main is the entry point for the pluck CLI.
package main

import "github.com/zoobzio/pluck/internal/cli"

func main() {
	cli.Execute()
}
