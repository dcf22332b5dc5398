// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"logsift/internal/logger"
	"logsift/internal/parallel"
)

func writeGzip(t *testing.T, path string, lines ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	for _, line := range lines {
		if _, err := gz.Write([]byte(line + "\n")); err != nil {
			t.Fatal(err)
		}
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

// buildInputTree creates a small nested tree of compressed logs plus one
// file that must be ignored because it lacks the suffix.
func buildInputTree(t *testing.T, root string) {
	t.Helper()
	writeGzip(t, filepath.Join(root, "a.log.gz"),
		"national_id=123456789012 and email=a@b.com",
		"nothing to see",
	)
	writeGzip(t, filepath.Join(root, "sub", "b.log.gz"),
		"uid=234123412346 ok",
		"ip=10.0.0.1 reachable",
		"quiet",
	)
	writeGzip(t, filepath.Join(root, "sub", "deep", "c.log.gz"),
		"no pii at all",
	)
	if err := os.WriteFile(filepath.Join(root, "skip.txt"), []byte("x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func runScan(t *testing.T, input string, workers int) (*ScanSummary, string) {
	t.Helper()
	outRoot := t.TempDir()
	summary, err := RunScan(ScanConfig{
		InputDir:  input,
		OutputDir: outRoot,
		Workers:   workers,
		Suffix:    ".gz",
		NoColor:   true,
		WorkDir:   t.TempDir(),
		Stdout:    &bytes.Buffer{},
		Log:       logger.NewNop(),
	})
	if err != nil {
		t.Fatalf("RunScan failed: %v", err)
	}
	return summary, outRoot
}

func TestRunScan_Totals(t *testing.T) {
	input := filepath.Join(t.TempDir(), "logs")
	buildInputTree(t, input)

	summary, outRoot := runScan(t, input, 4)

	if summary.TotalFilesParsed != 3 {
		t.Errorf("expected 3 files parsed, got %d", summary.TotalFilesParsed)
	}
	if summary.TotalLinesParsed != 6 {
		t.Errorf("expected 6 lines parsed, got %d", summary.TotalLinesParsed)
	}
	if summary.TotalLinesWithPII != 3 {
		t.Errorf("expected 3 PII lines, got %d", summary.TotalLinesWithPII)
	}
	if summary.FailedFiles != 0 {
		t.Errorf("expected no failures, got %d", summary.FailedFiles)
	}

	// Mirrored layout: <outRoot>/logs/sub/b.log.txt etc.
	for _, rel := range []string{
		filepath.Join("logs", "a.log.txt"),
		filepath.Join("logs", "sub", "b.log.txt"),
		filepath.Join("logs", "sub", "deep", "c.log.txt"),
	} {
		if _, err := os.Stat(filepath.Join(outRoot, rel)); err != nil {
			t.Errorf("expected report %s: %v", rel, err)
		}
	}
}

func TestRunScan_AggregationInvariance(t *testing.T) {
	input := filepath.Join(t.TempDir(), "logs")
	buildInputTree(t, input)

	single, outOne := runScan(t, input, 1)
	pooled, outTen := runScan(t, input, 10)

	if *single != *pooled {
		t.Errorf("summaries differ across worker counts: %+v vs %+v", single, pooled)
	}

	// Per-file report content must be byte-identical across runs.
	err := filepath.WalkDir(outOne, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(outOne, path)
		if err != nil {
			return err
		}
		a, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		b, err := os.ReadFile(filepath.Join(outTen, rel))
		if err != nil {
			return err
		}
		if !bytes.Equal(a, b) {
			t.Errorf("report %s differs between 1-worker and 10-worker runs", rel)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestRunScan_Idempotent(t *testing.T) {
	input := filepath.Join(t.TempDir(), "logs")
	buildInputTree(t, input)

	_, outA := runScan(t, input, 4)
	_, outB := runScan(t, input, 4)

	a, err := os.ReadFile(filepath.Join(outA, "logs", "a.log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(outB, "logs", "a.log.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("re-running over unchanged input must produce identical reports")
	}
}

func TestRunScan_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.gz")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := RunScan(ScanConfig{InputDir: file, OutputDir: t.TempDir()}); err == nil {
		t.Error("expected error for non-directory input")
	}
	if _, err := RunScan(ScanConfig{InputDir: "/nonexistent/dir", OutputDir: t.TempDir()}); err == nil {
		t.Error("expected error for missing input")
	}
}

func TestRunScan_FailedUnitDoesNotAbort(t *testing.T) {
	input := filepath.Join(t.TempDir(), "logs")
	buildInputTree(t, input)
	// Not actually gzip: this unit must fail without affecting siblings.
	if err := os.WriteFile(filepath.Join(input, "broken.gz"), []byte("plain"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, _ := runScan(t, input, 4)
	if summary.FailedFiles != 1 {
		t.Errorf("expected 1 failed file, got %d", summary.FailedFiles)
	}
	if summary.TotalFilesParsed != 3 {
		t.Errorf("expected 3 parsed files, got %d", summary.TotalFilesParsed)
	}
}

func TestCollectJobs_SkipsUnreadableEntries(t *testing.T) {
	dir := t.TempDir()
	writeGzip(t, filepath.Join(dir, "app.log.gz"), "clean")

	var jobs []parallel.Job
	walk := collectJobs(dir, filepath.Join(dir, "out"), ".gz", &jobs, logger.NewNop())

	// An unreadable entry is logged and skipped, never surfaced to WalkDir.
	if err := walk(filepath.Join(dir, "locked"), nil, fs.ErrPermission); err != nil {
		t.Fatalf("walk callback returned %v for unreadable entry, want nil", err)
	}
	if len(jobs) != 0 {
		t.Fatalf("unreadable entry produced %d jobs, want 0", len(jobs))
	}

	// Discovery keeps collecting after the skip.
	if err := filepath.WalkDir(dir, walk); err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job after skipped entry, got %d", len(jobs))
	}
	if jobs[0].FilePath != filepath.Join(dir, "app.log.gz") {
		t.Errorf("unexpected job path %s", jobs[0].FilePath)
	}
}

func TestRunScan_IndicatorFile(t *testing.T) {
	input := filepath.Join(t.TempDir(), "logs")
	buildInputTree(t, input)

	workDir := t.TempDir()
	var stdout bytes.Buffer
	summary, err := RunScan(ScanConfig{
		InputDir:  input,
		OutputDir: t.TempDir(),
		Workers:   2,
		Suffix:    ".gz",
		NoColor:   true,
		WorkDir:   workDir,
		Stdout:    &stdout,
		Log:       logger.NewNop(),
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(workDir, "logs_all_done.txt"))
	if err != nil {
		t.Fatalf("indicator file missing: %v", err)
	}
	if !strings.Contains(string(data), summary.Text()) {
		t.Error("indicator file must embed the summary block")
	}
	if !strings.Contains(string(data), "ALL DONE!") {
		t.Error("indicator file must embed the completion banner")
	}
	if !strings.Contains(stdout.String(), "--- PII Scan Summary ---") {
		t.Error("summary must be printed to the configured stdout")
	}
}

func TestParseChecksToRun(t *testing.T) {
	if ParseChecksToRun(nil) != nil {
		t.Error("nil checks should enable all detectors")
	}
	if ParseChecksToRun([]string{"all"}) != nil {
		t.Error("explicit all should enable all detectors")
	}

	enabled := ParseChecksToRun([]string{" EMAIL ", "NATIONAL_ID"})
	if !enabled["EMAIL"] || !enabled["NATIONAL_ID"] {
		t.Errorf("expected trimmed names enabled, got %v", enabled)
	}
	if len(enabled) != 2 {
		t.Errorf("expected exactly 2 enabled checks, got %v", enabled)
	}
}

func TestSummaryText(t *testing.T) {
	s := &ScanSummary{TotalFilesParsed: 2, TotalLinesParsed: 10, TotalLinesWithPII: 3}
	text := s.Text()
	for _, want := range []string{
		"--- PII Scan Summary ---",
		"Total files parsed: 2",
		"Total lines parsed: 10",
		"Total lines containing PII: 3",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary text missing %q:\n%s", want, text)
		}
	}
}
