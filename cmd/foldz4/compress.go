package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ndyakov/foldz4"
)

var compressOut string

var compressCmd = &cobra.Command{
	Use:     "compress <dir>",
	Aliases: []string{"c"},
	Short:   "Pack a directory and compress it into a single archive file",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		out := compressOut
		if out == "" {
			out = dir + ".fz4"
		}
		log.WithFields(map[string]interface{}{"dir": dir, "out": out}).Debug("compressing")
		if err := foldz4.CompressDir(dir, out); err != nil {
			return fmt.Errorf("compress %s: %w", dir, err)
		}
		log.Infof("wrote %s", out)
		return nil
	},
}

func init() {
	compressCmd.Flags().StringVarP(&compressOut, "output", "o", "", "archive file to write (default <dir>.fz4)")
}
