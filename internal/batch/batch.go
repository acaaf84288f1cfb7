// Package batch runs a set of independent compress-or-extract jobs across a
// bounded worker pool. It is the only place where several frames are
// processed at once: the block/frame codec stays single-threaded and
// synchronous per instance (one frame never has its blocks compressed concurrently), while
// a pipeline of many directories/archives may still be processed in
// parallel, each with its own codec buffers.
//
// Adapted from the job/result channel pattern of a per-block compression
// dispatcher, retargeted from intra-frame chunks to whole independent
// frames.
package batch

import (
	"runtime"
	"sync"
)

// Kind selects what a Job does.
type Kind int

const (
	// Compress packs Job.Dir and writes a frame to Job.File.
	Compress Kind = iota
	// Extract decodes the frame at Job.File into Job.Dir.
	Extract
)

// Job describes one independent unit of work: a directory to pack/unpack
// and the archive file path to write/read.
type Job struct {
	Kind Kind
	Dir  string
	File string
}

// Result pairs a Job's outcome with the job itself, preserving submission
// order so callers can report failures against the right input.
type Result struct {
	Job Job
	Err error
}

// Run dispatches jobs to workers (default runtime.GOMAXPROCS(0) when
// workers <= 0) via run, and returns results in the same order as jobs. One
// job's error does not stop or affect any other job.
func Run(jobs []Job, workers int, run func(Job) error) []Result {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]Result, len(jobs))
	jobCh := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobCh {
				results[i] = Result{Job: jobs[i], Err: run(jobs[i])}
			}
		}()
	}

	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)
	wg.Wait()

	return results
}
