// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package processor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"logsift/internal/detector"
)

const readBufSize = 64 * 1024

// FileResult aggregates the per-file counters returned by one unit of work.
type FileResult struct {
	FilesProcessed int
	LinesProcessed int
	LinesWithPII   int
}

// Processor scans one compressed source end-to-end: it streams the gzip
// text line by line, runs each line through the detector scanner and
// writes one report record per PII-bearing line. Safe for concurrent use;
// workers share a single instance.
type Processor struct {
	scanner *detector.Scanner
	suffix  string
}

// New creates a file processor. suffix is the compression suffix replaced
// by ".txt" when deriving the report name.
func New(scanner *detector.Scanner, suffix string) *Processor {
	return &Processor{
		scanner: scanner,
		suffix:  suffix,
	}
}

// OutputPath derives the report path for srcPath inside outputDir.
func (p *Processor) OutputPath(srcPath, outputDir string) string {
	name := strings.TrimSuffix(filepath.Base(srcPath), p.suffix) + ".txt"
	return filepath.Join(outputDir, name)
}

// ProcessFile scans one compressed source and writes its report into
// outputDir, creating the directory if absent and truncating any prior
// report. Undecodable byte sequences are dropped, never fatal. On any
// open, decompression or write failure the unit returns a zero FileResult
// and the error; sibling files are unaffected.
func (p *Processor) ProcessFile(srcPath, outputDir string) (FileResult, error) {
	var res FileResult

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return FileResult{}, fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return FileResult{}, fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer src.Close()

	gz, err := gzip.NewReader(src)
	if err != nil {
		return FileResult{}, fmt.Errorf("decompress %s: %w", srcPath, err)
	}
	defer gz.Close()

	outPath := p.OutputPath(srcPath, outputDir)
	out, err := os.Create(outPath)
	if err != nil {
		return FileResult{}, fmt.Errorf("create report %s: %w", outPath, err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	// ReadString instead of a bufio.Scanner: log lines have no length
	// bound and must never fail a unit for being long.
	r := bufio.NewReaderSize(gz, readBufSize)
	for {
		line, readErr := r.ReadString('\n')
		if line != "" {
			res.LinesProcessed++

			// Lenient decoding: invalid UTF-8 sequences are dropped.
			result := p.scanner.ScanLine(strings.ToValidUTF8(line, ""))
			if result.HasPII() {
				res.LinesWithPII++
				if _, err := w.WriteString(EncodeRecord(result)); err != nil {
					return FileResult{}, fmt.Errorf("write report %s: %w", outPath, err)
				}
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return FileResult{}, fmt.Errorf("read %s: %w", srcPath, readErr)
		}
	}

	if err := w.Flush(); err != nil {
		return FileResult{}, fmt.Errorf("write report %s: %w", outPath, err)
	}

	res.FilesProcessed = 1
	return res, nil
}

// EncodeRecord renders one PII-bearing line as the flat, semicolon-joined
// report record: line;field;value;detector[;verdict];... newline-terminated.
func EncodeRecord(result detector.LineResult) string {
	parts := make([]string, 0, 1+len(result.Matches)*4)
	parts = append(parts, result.Line)
	for _, m := range result.Matches {
		parts = append(parts, m.Field, m.Value, m.Type)
		if m.Verdict != "" {
			parts = append(parts, m.Verdict)
		}
	}
	return strings.Join(parts, ";") + "\n"
}
