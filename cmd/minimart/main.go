package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minimart",
	Short: "Minimart - terminal retail ordering",
	Long:  "Minimart is a terminal-based retail ordering workflow: sign up, browse the catalog, fill a cart and check out for a receipt.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(seedCmd)
}
