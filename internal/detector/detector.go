// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// NoField is the sentinel attributed to a match that is not preceded by a
// recognizable assignment.
const NoField = "no_field"

// Match represents a single detector hit within one line.
type Match struct {
	Field   string // attributed assignment identifier, or NoField
	Value   string // the matched text
	Type    string // detector name, e.g. "NATIONAL_ID"
	Verdict string // checksum verdict; set only for NATIONAL_ID matches
}

// LineResult holds every match found in one stripped line. Matches are
// ordered by detector registration order, then by occurrence offset.
type LineResult struct {
	Line    string
	Matches []Match
}

// HasPII reports whether the line produced at least one match.
func (r LineResult) HasPII() bool {
	return len(r.Matches) > 0
}

// ChecksumValidator attaches a verdict to national ID candidates.
type ChecksumValidator interface {
	Validate(candidate string) string
}
