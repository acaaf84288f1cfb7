package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ndyakov/foldz4"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch <manifest>",
	Short: "Compress many directories listed in a tab-separated manifest",
	Long: `Compress many directories listed in a manifest file, one job per line:

	<dir>\t<outfile>

Jobs run across a bounded worker pool (-j), independently: one job's
failure does not stop the others.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jobs, err := readManifest(args[0])
		if err != nil {
			return fmt.Errorf("read manifest: %w", err)
		}
		results := foldz4.RunBatch(jobs, batchWorkers)

		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
				log.WithError(r.Err).Errorf("job %s -> %s failed", r.Job.Dir, r.Job.File)
				continue
			}
			log.Infof("job %s -> %s done", r.Job.Dir, r.Job.File)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d jobs failed", failed, len(results))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "j", 0, "worker count (default GOMAXPROCS)")
}

func readManifest(path string) ([]foldz4.BatchJob, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var jobs []foldz4.BatchJob
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed manifest line %q: want <dir>\\t<outfile>", line)
		}
		jobs = append(jobs, foldz4.BatchJob{
			Kind: foldz4.BatchCompress,
			Dir:  parts[0],
			File: parts[1],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
