// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// Scanner evaluates single log lines against a detector registry. It is
// stateless between lines and safe for concurrent use once constructed.
type Scanner struct {
	registry *Registry
	checksum ChecksumValidator
}

// NewScanner creates a line scanner over registry. checksum is invoked on
// every NATIONAL_ID match to attach a verdict; a nil checksum leaves the
// verdict empty.
func NewScanner(registry *Registry, checksum ChecksumValidator) *Scanner {
	return &Scanner{
		registry: registry,
		checksum: checksum,
	}
}

// ScanLine strips line of surrounding whitespace and collects every match
// of every registered detector, in registration order then left-to-right.
// Identical input always yields an identical, order-stable match sequence.
func (s *Scanner) ScanLine(line string) LineResult {
	clean := strings.TrimSpace(line)

	var matches []Match
	for _, p := range s.registry.patterns {
		for _, loc := range p.Regex.FindAllStringIndex(clean, -1) {
			m := Match{
				Field: AttributeField(clean, loc[0]),
				Value: clean[loc[0]:loc[1]],
				Type:  p.Name,
			}
			if p.Name == TypeNationalID && s.checksum != nil {
				m.Verdict = s.checksum.Validate(m.Value)
			}
			matches = append(matches, m)
		}
	}

	return LineResult{Line: clean, Matches: matches}
}
