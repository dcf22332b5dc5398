// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

import "logsift/internal/help"

// GetCheckInfo returns standardized information about the national ID check
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             "NATIONAL_ID",
		ShortDescription: "Detects 12-digit national ID numbers and validates their checksum",
		DetailedDescription: `The National ID check detects word-bounded runs of exactly 12 digits
and validates each candidate with the Verhoeff checksum algorithm.

The Verhoeff algorithm detects all single-digit errors and all adjacent
transposition errors. Every match is reported together with its verdict
(Valid or Invalid), so downstream tooling can distinguish well-formed
identifiers from incidental 12-digit noise such as timestamps.`,

		Patterns: []string{
			"12 contiguous digits with word boundaries (e.g., 234123412346)",
		},

		Examples: []string{
			"logsift --checks NATIONAL_ID /var/log/archive",
		},
	}
}
