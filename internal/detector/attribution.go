// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"regexp"
	"unicode/utf8"
)

// attributionWindow is the maximum number of characters inspected before a
// match offset when recovering a field name.
const attributionWindow = 4

// fieldRegex matches a trailing `identifier=` assignment anchored at the
// end of the inspected window. Word characters follow the Unicode classes
// so non-ASCII field names attribute like ASCII ones.
var fieldRegex = regexp.MustCompile(`([\p{L}\p{N}_]+)\s*=$`)

// AttributeField recovers the left-hand identifier of an assignment
// immediately preceding the match at offset in line. Only the
// attributionWindow characters before the offset are inspected, so
// identifiers longer than the window are truncated or missed; that is an
// accepted trade for bounded cost. The window is measured in characters,
// never splitting a multi-byte rune. Returns NoField when no assignment
// is found.
func AttributeField(line string, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(line) {
		offset = len(line)
	}
	start := offset
	for i := 0; i < attributionWindow && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(line[:start])
		start -= size
	}

	if m := fieldRegex.FindStringSubmatch(line[start:offset]); m != nil {
		return m[1]
	}
	return NoField
}
