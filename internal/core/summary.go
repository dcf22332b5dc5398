// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// completionBanner is the fixed decorative block appended to the summary
// on stdout and in the indicator file.
const completionBanner = "\n========================================\n" +
	"||             SCAN COMPLETE!         ||\n" +
	"||             ALL DONE!              ||\n" +
	"========================================\n"

// Text renders the plain summary block shared by stdout and the
// indicator file.
func (s *ScanSummary) Text() string {
	return fmt.Sprintf(
		"--- PII Scan Summary ---\n"+
			"Total files parsed: %d\n"+
			"Total lines parsed: %d\n"+
			"Total lines containing PII: %d\n"+
			"------------------------",
		s.TotalFilesParsed, s.TotalLinesParsed, s.TotalLinesWithPII)
}

// PrintSummary writes the summary block and the completion banner to w,
// colored unless noColor is set.
func PrintSummary(w io.Writer, s *ScanSummary, noColor bool) {
	header := color.New(color.FgCyan, color.Bold)
	banner := color.New(color.FgGreen, color.Bold)
	if noColor {
		header.DisableColor()
		banner.DisableColor()
	}

	fmt.Fprintln(w)
	header.Fprintln(w, s.Text())
	banner.Fprintf(w, "%s\n", completionBanner)
}

// WriteIndicator persists the summary and banner to
// <inputBase>_all_done.txt inside dir ("" means the working directory)
// and returns the indicator path.
func WriteIndicator(s *ScanSummary, dir, inputBase string) (string, error) {
	name := filepath.Join(dir, inputBase+"_all_done.txt")
	if err := os.WriteFile(name, []byte(s.Text()+completionBanner), 0o644); err != nil {
		return name, err
	}
	return name, nil
}
