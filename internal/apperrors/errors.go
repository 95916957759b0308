package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a candidate record collides with an existing one
// under the active duplicate-check mode.
var ErrDuplicate = errors.New("duplicate record")

// ErrStorage indicates that the backing record file could not be read or written.
var ErrStorage = errors.New("storage error")

// ErrFormat indicates that a persisted file exists but could not be parsed.
var ErrFormat = errors.New("format error")

// ErrRemoteSync indicates a failure while pushing the dataset to the remote
// content store. Always non-fatal: the local store stays the source of truth.
var ErrRemoteSync = errors.New("remote sync error")

// ErrDelivery indicates that an outbound notification email could not be sent.
// Non-fatal: the record mutation that triggered it is not rolled back.
var ErrDelivery = errors.New("email delivery error")
