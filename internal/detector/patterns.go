// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "regexp"

// Category distinguishes token-shaped detectors from keyword-context ones.
type Category string

const (
	// CategoryToken marks detectors that match the sensitive value itself.
	CategoryToken Category = "token"
	// CategoryKeyword marks detectors that match a surrounding label
	// signaling a PII category rather than the value.
	CategoryKeyword Category = "keyword-context"
)

// Detector names, in registration order.
const (
	TypeNationalID      = "NATIONAL_ID"
	TypeDrivingLicense  = "DRIVING_LICENSE"
	TypeTaxID           = "TAX_ID"
	TypeIPAddress       = "IP_ADDRESS"
	TypeMACAddress      = "MAC_ADDRESS"
	TypeGeoCoordinate   = "GEO_COORDINATE"
	TypeEmail           = "EMAIL"
	TypeMobileNumber    = "MOBILE_NUMBER"
	TypePAN             = "PERMANENT_ACCOUNT_NUMBER"
	TypeUPI             = "UNIFIED_PAYMENT_ID"
	TypeVoterID         = "VOTER_ID"
	TypePaymentCard     = "PAYMENT_CARD"
	TypeAddress         = "ADDRESS"
	TypeName            = "NAME"
	TypeDateOfBirth     = "DATE_OF_BIRTH"
	TypeAccountNumber   = "ACCOUNT_NUMBER"
	TypeCustomerID      = "CUSTOMER_ID"
	TypeSensitiveHints  = "SENSITIVE_HINTS"
	TypeInsurancePolicy = "INSURANCE_POLICY"
)

// Pattern is one named, precompiled detector. Detectors are independent:
// no detector's result depends on another's, and a value may satisfy
// several detectors at once (all of them are reported).
type Pattern struct {
	Name     string
	Category Category
	Regex    *regexp.Regexp
}

// defaultPatterns returns the full detector set in registration order.
// Order affects only output ordering, never correctness.
func defaultPatterns() []Pattern {
	return []Pattern{
		{TypeNationalID, CategoryToken, regexp.MustCompile(`\b[0-9]{12}\b`)},
		{TypeDrivingLicense, CategoryToken, regexp.MustCompile(`[A-Z]{2}[0-9]{2}[\-\s]?[0-9]{4}[0-9]{7}`)},
		{TypeTaxID, CategoryToken, regexp.MustCompile(`[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][A-Z0-9]Z[A-Z0-9]`)},
		{TypeIPAddress, CategoryToken, regexp.MustCompile(`([0-9]{1,3}\.){3}[0-9]{1,3}`)},
		{TypeMACAddress, CategoryToken, regexp.MustCompile(`([0-9A-Fa-f]{2}[:-]){5}([0-9A-Fa-f]{2})`)},
		{TypeGeoCoordinate, CategoryToken, regexp.MustCompile(`-?[0-9]{1,3}\.[0-9]+,\s*-?[0-9]{1,3}\.[0-9]+`)},
		{TypeEmail, CategoryToken, regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)},
		{TypeMobileNumber, CategoryToken, regexp.MustCompile(`(\+91|91|0)?[6-9][0-9]{9}`)},
		{TypePAN, CategoryToken, regexp.MustCompile(`[A-Z]{5}[0-9]{4}[A-Z]`)},
		{TypeUPI, CategoryToken, regexp.MustCompile(`[A-Za-z0-9]+@[A-Za-z]+`)},
		{TypeVoterID, CategoryToken, regexp.MustCompile(`[A-Z]{3}[0-9]{7}`)},
		{TypePaymentCard, CategoryToken, regexp.MustCompile(
			`4[0-9]{12}(?:[0-9]{3})?` +
				`|5[1-5][0-9]{14}` +
				`|2(?:2[2-9][0-9]{12}|[3-6][0-9]{13}|7(?:[01][0-9]{12}|20[0-9]{12}))` +
				`|3[47][0-9]{13}` +
				`|60[0-9]{14}` +
				`|65[0-9]{14}` +
				`|81[0-9]{14}` +
				`|508[0-9][0-9]{12}`)},
		{TypeAddress, CategoryKeyword, regexp.MustCompile(
			`(?i)\b(address|full address|complete address|residential address|permanent address|locality|pincode|postal code|zip|zip code|city|state|add)\b`)},
		{TypeName, CategoryKeyword, regexp.MustCompile(`(?i)\b(name|nam)\b`)},
		{TypeDateOfBirth, CategoryKeyword, regexp.MustCompile(`(?i)\b(date of birth|dob|birthdate|born on)\b`)},
		{TypeAccountNumber, CategoryKeyword, regexp.MustCompile(`(?i)\b(account number|acc number|bank account|account no|a/c no)\b`)},
		{TypeCustomerID, CategoryKeyword, regexp.MustCompile(`(?i)\b(customer id|cust id|customer number|cust)\b`)},
		{TypeSensitiveHints, CategoryKeyword, regexp.MustCompile(`(?i)\b(national id|identity card|proof of identity|document number)\b`)},
		{TypeInsurancePolicy, CategoryKeyword, regexp.MustCompile(`(?i)\b(insurance number|policy number|insurance id|ins id)\b`)},
	}
}

// Registry is an immutable, ordered set of detectors. It is constructed
// once at startup and never mutated, so it is safe for concurrent use
// without synchronization.
type Registry struct {
	patterns []Pattern
}

// NewRegistry builds a registry holding the detectors whose names map to
// true in enabled. A nil map enables every detector. Registration order
// is preserved regardless of filtering.
func NewRegistry(enabled map[string]bool) *Registry {
	all := defaultPatterns()
	if enabled == nil {
		return &Registry{patterns: all}
	}

	var filtered []Pattern
	for _, p := range all {
		if enabled[p.Name] {
			filtered = append(filtered, p)
		}
	}
	return &Registry{patterns: filtered}
}

// Patterns returns the registered detectors in registration order. The
// returned slice is a copy; callers cannot mutate the registry.
func (r *Registry) Patterns() []Pattern {
	out := make([]Pattern, len(r.patterns))
	copy(out, r.patterns)
	return out
}

// Names returns the registered detector names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.patterns))
	for i, p := range r.patterns {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of registered detectors.
func (r *Registry) Len() int {
	return len(r.patterns)
}
