// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package nationalid

// Verdict values attached to national ID matches.
const (
	VerdictValid   = "Valid"
	VerdictInvalid = "Invalid"
)

// Verhoeff multiplication table (the dihedral group D5). Fixed algorithmic
// constant; must not be derived at runtime.
var mult = [10][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
	{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
	{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
	{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
	{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
	{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
	{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
	{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
	{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
}

// Verhoeff permutation rows, selected cyclically by position mod 8.
var perm = [8][10]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
	{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
	{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
	{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
	{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
	{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
	{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
	{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
}

// Validator checks national ID candidates with the Verhoeff checksum,
// which detects all single-digit and adjacent-transposition errors.
type Validator struct{}

// NewValidator creates and returns a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate runs the Verhoeff checksum over candidate and returns the
// verdict string. Malformed input (empty, or containing a non-digit)
// resolves to Invalid; the validator never fails or panics.
func (v *Validator) Validate(candidate string) string {
	if candidate == "" {
		return VerdictInvalid
	}

	c := 0
	j := 0
	for i := len(candidate) - 1; i >= 0; i-- {
		ch := candidate[i]
		if ch < '0' || ch > '9' {
			return VerdictInvalid
		}
		c = mult[c][perm[j%8][ch-'0']]
		j++
	}

	if c == 0 {
		return VerdictValid
	}
	return VerdictInvalid
}
