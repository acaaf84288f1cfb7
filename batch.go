package foldz4

import "github.com/ndyakov/foldz4/internal/batch"

// BatchJob is one directory-to-archive (or archive-to-directory) unit of
// work for RunBatch.
type BatchJob = batch.Job

// BatchResult pairs a BatchJob with its outcome.
type BatchResult = batch.Result

// Re-export the job kinds so callers need not import the internal package.
const (
	BatchCompress = batch.Compress
	BatchExtract  = batch.Extract
)

// RunBatch fans jobs out across workers (default GOMAXPROCS when <= 0),
// compressing or extracting each independently. Each job gets its own
// frame codec instance; one job's failure never affects another's result.
func RunBatch(jobs []BatchJob, workers int) []BatchResult {
	return batch.Run(jobs, workers, func(j BatchJob) error {
		switch j.Kind {
		case batch.Compress:
			return CompressDir(j.Dir, j.File)
		case batch.Extract:
			return ExtractFile(j.File, j.Dir)
		default:
			return ErrBadFile
		}
	})
}
