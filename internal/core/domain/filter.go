package domain

import (
	"strings"
	"time"
)

// FilterCriteria is a set of independent, AND-combined predicates over the
// record collection. Zero values mean "predicate inactive".
type FilterCriteria struct {
	ShowArchived           bool
	Statuses               []string
	IncorrectStoreContains string
	FitmentStoreContains   string
	// DateFrom/DateTo bound RequestDate inclusively. The range is active only
	// when both ends are set; a record whose date is empty or unparseable
	// never matches an active range.
	DateFrom time.Time
	DateTo   time.Time
	Query    string
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "02/01/2006"}

func parseRecordDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Filter returns the records matching every active predicate in crit. The
// result preserves input order, never mutates the input, and is idempotent:
// filtering its own output with the same criteria yields the same output.
func Filter(records []TransferRecord, crit FilterCriteria) []TransferRecord {
	out := make([]TransferRecord, 0, len(records))
	for _, r := range records {
		if Matches(r, crit) {
			out = append(out, r)
		}
	}
	return out
}

// Matches evaluates a single record against the criteria.
func Matches(r TransferRecord, crit FilterCriteria) bool {
	if !crit.ShowArchived && bool(r.Archived) {
		return false
	}
	if len(crit.Statuses) > 0 && !containsString(crit.Statuses, r.Status) {
		return false
	}
	if crit.IncorrectStoreContains != "" && !containsFold(r.IncorrectStore, crit.IncorrectStoreContains) {
		return false
	}
	if crit.FitmentStoreContains != "" && !containsFold(r.FitmentStore, crit.FitmentStoreContains) {
		return false
	}
	if !crit.DateFrom.IsZero() && !crit.DateTo.IsZero() {
		d, ok := parseRecordDate(r.RequestDate)
		if !ok || d.Before(crit.DateFrom) || d.After(crit.DateTo) {
			return false
		}
	}
	if crit.Query != "" && !matchesQuery(r, crit.Query) {
		return false
	}
	return true
}

func matchesQuery(r TransferRecord, query string) bool {
	for _, v := range r.DisplayValues() {
		if containsFold(v, query) {
			return true
		}
	}
	return false
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
