// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"logsift/internal/detector"
	"logsift/internal/logger"
	"logsift/internal/parallel"
	"logsift/internal/processor"
	"logsift/internal/validators/nationalid"
	"logsift/internal/version"
)

// ScanConfig holds the resolved settings for one scan run.
type ScanConfig struct {
	InputDir  string
	OutputDir string   // output root; per-run artifacts land under <OutputDir>/<input base>
	Workers   int      // worker pool capacity; <1 falls back to parallel.DefaultWorkers
	Suffix    string   // compression suffix of scannable sources, e.g. ".gz"
	Checks    []string // detector names to enable; empty or ["all"] enables every detector
	NoColor   bool
	WorkDir   string    // directory receiving the indicator file; "" means the working directory
	Stdout    io.Writer // summary destination; nil means os.Stdout
	Log       *logger.Logger
}

// ScanSummary aggregates counters across every completed unit. It has a
// single owner: the drain loop in RunScan is the only writer, so the
// totals need no locking. It always equals the element-wise sum of the
// per-file results regardless of completion order.
type ScanSummary struct {
	TotalFilesParsed  int
	TotalLinesParsed  int
	TotalLinesWithPII int
	FailedFiles       int
}

// RunScan walks cfg.InputDir for compressed sources, processes each on a
// bounded worker pool, writes per-file reports into the mirrored output
// tree, prints the aggregate summary with the completion banner and
// persists the indicator file. A non-directory input aborts before any
// work is dispatched; unreadable entries met during discovery and
// per-unit failures are logged and skipped.
func RunScan(cfg ScanConfig) (*ScanSummary, error) {
	log := cfg.Log
	if log == nil {
		log = logger.NewNop()
	}
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	workers := cfg.Workers
	if workers < 1 {
		workers = parallel.DefaultWorkers
	}
	suffix := cfg.Suffix
	if suffix == "" {
		suffix = ".gz"
	}

	info, err := os.Stat(cfg.InputDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory", cfg.InputDir)
	}

	base := filepath.Base(filepath.Clean(cfg.InputDir))
	rootOut := filepath.Join(cfg.OutputDir, base)
	if err := os.MkdirAll(rootOut, 0o755); err != nil {
		return nil, fmt.Errorf("create output root %s: %w", rootOut, err)
	}
	if abs, err := filepath.Abs(rootOut); err == nil {
		fmt.Fprintf(stdout, "Output will be under: %s\n", abs)
	}

	jobs := discoverJobs(cfg.InputDir, rootOut, suffix, log)
	log.Info("scan starting",
		zap.String("version", version.Short()),
		zap.String("input", cfg.InputDir),
		zap.Int("files", len(jobs)),
		zap.Int("workers", workers),
	)

	registry := detector.NewRegistry(ParseChecksToRun(cfg.Checks))
	scanner := detector.NewScanner(registry, nationalid.NewValidator())
	pool := parallel.NewWorkerPool(workers, processor.New(scanner, suffix))
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()
	go pool.Wait()

	// The drain loop is the single owner of the summary; workers never
	// touch shared counters.
	summary := &ScanSummary{}
	for res := range pool.Results() {
		if res.Err != nil {
			summary.FailedFiles++
			log.Error("file failed", zap.String("file", res.FilePath), zap.Error(res.Err))
			continue
		}
		summary.TotalFilesParsed += res.Counts.FilesProcessed
		summary.TotalLinesParsed += res.Counts.LinesProcessed
		summary.TotalLinesWithPII += res.Counts.LinesWithPII
		log.Info("processed",
			zap.String("file", res.FilePath),
			zap.Int("lines", res.Counts.LinesProcessed),
			zap.Int("lines_with_pii", res.Counts.LinesWithPII),
			zap.Duration("took", res.Duration),
		)
	}

	PrintSummary(stdout, summary, cfg.NoColor)

	indicator, err := WriteIndicator(summary, cfg.WorkDir, base)
	if err != nil {
		// Per-file reports and the printed summary remain valid.
		log.Error("indicator file not written", zap.String("file", indicator), zap.Error(err))
	} else {
		fmt.Fprintf(stdout, "Indicator file created: %s\n", indicator)
	}

	return summary, nil
}

// discoverJobs recursively collects every file under inputDir ending in
// suffix, pairing each with its mirrored output directory under rootOut.
func discoverJobs(inputDir, rootOut, suffix string, log *logger.Logger) []parallel.Job {
	var jobs []parallel.Job
	_ = filepath.WalkDir(inputDir, collectJobs(inputDir, rootOut, suffix, &jobs, log))
	return jobs
}

// collectJobs returns the WalkDir callback backing discoverJobs. Walk
// errors are logged and skipped: one unreadable entry must not keep the
// rest of the tree from being scanned.
func collectJobs(inputDir, rootOut, suffix string, jobs *[]parallel.Job, log *logger.Logger) fs.WalkDirFunc {
	return func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Error("skipping unreadable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		rel, err := filepath.Rel(inputDir, filepath.Dir(path))
		if err != nil {
			log.Error("skipping unmappable path", zap.String("path", path), zap.Error(err))
			return nil
		}
		*jobs = append(*jobs, parallel.Job{
			FilePath:  path,
			OutputDir: filepath.Join(rootOut, rel),
		})
		return nil
	}
}

// ParseChecksToRun converts a slice of detector names into an
// enabled-checks map for the registry. An empty slice or ["all"] returns
// nil, which enables every detector.
func ParseChecksToRun(checks []string) map[string]bool {
	if len(checks) == 0 || (len(checks) == 1 && strings.TrimSpace(checks[0]) == "all") {
		return nil
	}

	enabled := make(map[string]bool)
	for _, check := range checks {
		if name := strings.TrimSpace(check); name != "" {
			enabled[name] = true
		}
	}
	return enabled
}
