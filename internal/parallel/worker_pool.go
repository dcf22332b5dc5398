// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"sync"
	"time"

	"logsift/internal/processor"
)

// DefaultWorkers is the worker pool capacity used when none is configured.
const DefaultWorkers = 10

// Job represents one compressed source processed end-to-end by one worker.
type Job struct {
	FilePath  string
	OutputDir string
}

// Result carries one unit's counters, or its failure. Exactly one Result
// is emitted per submitted Job, in completion order.
type Result struct {
	FilePath string
	Counts   processor.FileResult
	Err      error
	Duration time.Duration
}

// WorkerPool runs file processing jobs on a bounded number of workers.
// Workers share no mutable state; aggregation happens wherever Results is
// drained.
type WorkerPool struct {
	workers int
	proc    *processor.Processor
	jobs    chan Job
	results chan Result
	wg      sync.WaitGroup
}

// NewWorkerPool creates a pool of the given capacity around proc. A
// capacity below 1 falls back to a single worker.
func NewWorkerPool(workers int, proc *processor.Processor) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		workers: workers,
		proc:    proc,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
	}
}

// Start initializes worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workers; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}
}

// Submit adds a job to the queue, blocking when the queue is full.
func (wp *WorkerPool) Submit(job Job) {
	wp.jobs <- job
}

// Close signals that no more jobs will be submitted.
func (wp *WorkerPool) Close() {
	close(wp.jobs)
}

// Wait blocks until every worker has drained the queue, then closes the
// results channel. Call after Close, concurrently with draining Results.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// Results returns the results channel.
func (wp *WorkerPool) Results() <-chan Result {
	return wp.results
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()

	for job := range wp.jobs {
		start := time.Now()
		counts, err := wp.proc.ProcessFile(job.FilePath, job.OutputDir)
		wp.results <- Result{
			FilePath: job.FilePath,
			Counts:   counts,
			Err:      err,
			Duration: time.Since(start),
		}
	}
}
