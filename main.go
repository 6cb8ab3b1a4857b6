// main is the entry point for the pipelog CLI.
package main

import (
	"github.com/huangsam/pipelog/cmd"
	"github.com/huangsam/pipelog/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
