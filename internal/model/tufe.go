package model

import "time"

// TufeRecord sources. The official API is the single authoritative
// provider; manual entries come from explicit user overrides.
const (
	SourceOfficialAPI = "official-api"
	SourceManual      = "manual"
)

// TufeRecord is one cached yearly TÜFE observation. Records are superseded
// by newer writes, never silently deleted; a manual record always wins over
// an automatic one.
type TufeRecord struct {
	Year      int        `json:"year"`
	Value     float64    `json:"value"` // percentage, 0..1000
	Source    string     `json:"source"`
	FetchedAt time.Time  `json:"fetched_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"` // nil: never expires (manual)
}

// Manual reports whether the record came from a manual override.
func (r TufeRecord) Manual() bool { return r.Source == SourceManual }

// Expired reports whether the record is past its expiry at the given time.
// Manual records never expire.
func (r TufeRecord) Expired(now time.Time) bool {
	if r.ExpiresAt == nil {
		return false
	}
	return !now.Before(*r.ExpiresAt)
}
