package model

import "errors"

// Sentinel errors for the three failure classes the engine distinguishes.
// Fetch failures are deliberately absent: an unreachable or malformed index
// value is the Unavailable outcome of the cache, not an error.
var (
	// ErrInvalidRange marks a malformed date window. Caller bug; surfaced
	// immediately, never retried.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrRuleConfiguration marks a gap or overlap in the static rule
	// catalog. Fatal: evaluation must halt rather than produce a silently
	// wrong cap.
	ErrRuleConfiguration = errors.New("rule catalog misconfigured")

	// ErrValidation marks an out-of-range or malformed index value,
	// rejected before storage.
	ErrValidation = errors.New("validation failed")
)
