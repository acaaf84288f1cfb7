package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndyakov/foldz4/internal/sysinfo"
)

// Version is the foldz4 release string, set via -ldflags at build time.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the foldz4 version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("foldz4 %s\n", Version)
		if verbose {
			fmt.Printf("host: %s\n", sysinfo.Detect())
		}
		return nil
	},
}
