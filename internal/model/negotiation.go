package model

import (
	"fmt"
	"strings"
)

// NegotiationMode tones the optional negotiation note. It is passed
// explicitly into presentation collaborators; the rule and cache engine
// never reads it.
type NegotiationMode string

const (
	NegotiationCalm      NegotiationMode = "calm"
	NegotiationAssertive NegotiationMode = "assertive"
)

// ParseNegotiationMode parses a user-supplied mode string.
func ParseNegotiationMode(s string) (NegotiationMode, error) {
	switch NegotiationMode(strings.ToLower(s)) {
	case NegotiationCalm:
		return NegotiationCalm, nil
	case NegotiationAssertive:
		return NegotiationAssertive, nil
	default:
		return "", fmt.Errorf("unknown negotiation mode: %s (supported: calm, assertive)", s)
	}
}
