// Package main is the entry point for the uploadsmoke diagnostic harness.
package main

import "github.com/spf13/cobra"

func main() {
	cobra.CheckErr(newRootCmd().Execute())
}
