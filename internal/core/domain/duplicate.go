package domain

import "strings"

// DuplicateMode selects how a candidate record is matched against the
// existing collection.
type DuplicateMode string

const (
	// DuplicateModePair rejects a candidate when an existing record carries the
	// exact same order number and request date. Comparison is literal string
	// equality; dates are normalized once at the API boundary, not here.
	DuplicateModePair DuplicateMode = "pair"

	// DuplicateModeOrderOnly rejects a candidate when an existing record
	// carries the same order number, regardless of date. Surrounding
	// whitespace is trimmed on both sides of the comparison.
	DuplicateModeOrderOnly DuplicateMode = "order_only"
)

// Valid reports whether m is a known duplicate-check mode.
func (m DuplicateMode) Valid() bool {
	return m == DuplicateModePair || m == DuplicateModeOrderOnly
}

// IsDuplicate decides whether candidate collides with any record in existing
// under the given mode. It is a pure function over the snapshot passed in;
// unknown modes fall back to the pair rule.
func IsDuplicate(candidate TransferRecord, existing []TransferRecord, mode DuplicateMode) bool {
	for _, r := range existing {
		switch mode {
		case DuplicateModeOrderOnly:
			if strings.TrimSpace(r.OrderNumber) == strings.TrimSpace(candidate.OrderNumber) {
				return true
			}
		default:
			if r.OrderNumber == candidate.OrderNumber && r.RequestDate == candidate.RequestDate {
				return true
			}
		}
	}
	return false
}
