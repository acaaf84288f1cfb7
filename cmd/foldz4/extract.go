package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndyakov/foldz4"
)

var extractDest string

var extractCmd = &cobra.Command{
	Use:     "extract <file>",
	Aliases: []string{"x"},
	Short:   "Decode an archive file and restore its directory tree",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		dest := extractDest
		if dest == "" {
			dest = "."
		}
		log.WithFields(map[string]interface{}{"in": in, "dest": dest}).Debug("extracting")
		if err := foldz4.ExtractFile(in, dest); err != nil {
			return fmt.Errorf("extract %s: %w", in, err)
		}
		log.Infof("restored into %s", dest)
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractDest, "directory", "C", "", "directory to restore into (default current directory)")
}
