// Package main implements the foldz4 command-line archiver: pack a
// directory into a single LZ4-framed archive, or unpack one back to disk.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	log     = logrus.New()
	verbose bool

	// tar-style shorthand flags: -c <dir> compresses, -x <file> extracts,
	// bypassing the subcommand form entirely.
	shortCompress string
	shortExtract  string
)

var rootCmd = &cobra.Command{
	Use:           "foldz4",
	Short:         "Pack and compress a directory into a single LZ4 frame",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case shortCompress != "":
			return compressCmd.RunE(compressCmd, []string{shortCompress})
		case shortExtract != "":
			return extractCmd.RunE(extractCmd, []string{shortExtract})
		default:
			return cmd.Help()
		}
	},
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&shortCompress, "compress", "c", "", "shorthand for 'compress <dir>'")
	rootCmd.Flags().StringVarP(&shortExtract, "extract", "x", "", "shorthand for 'extract <file>'")
	rootCmd.AddCommand(compressCmd, extractCmd, batchCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
