package domain

import "encoding/json"

// Settings is the small persisted key/value configuration of the tracker.
// Only DuplicateCheck is interpreted by the core; any other keys found in the
// settings file are carried in Extra and written back untouched.
type Settings struct {
	DuplicateCheck DuplicateMode
	Extra          map[string]json.RawMessage
}

// DefaultSettings returns the settings used when nothing has been persisted.
func DefaultSettings() Settings {
	return Settings{DuplicateCheck: DuplicateModePair}
}
