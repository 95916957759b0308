package dto

// SyncPushResult reports a remote push attempt. A failed push leaves the
// local store untouched; Message carries the remote error text in that case.
type SyncPushResult struct {
	Committed bool   `json:"committed"`
	Message   string `json:"message"`
	SHA       string `json:"sha,omitempty"`
	URL       string `json:"url,omitempty"`
}
