package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ustaoglu/kiracap/internal/model"
)

const systemPrompt = `You help Turkish tenants discuss rent increases with their landlords.
You are given a fully computed legal-cap breakdown. You must not change,
recompute or round any of the numbers; quote them exactly as given. If a
period is marked PENDING, say the official TÜFE value is not yet available
and that no number can be quoted for that period.`

// Summarizer generates an optional negotiation note from a computed result.
// It runs strictly after computation and can never affect the amounts.
type Summarizer struct {
	provider Provider
}

// NewSummarizer creates a summarizer; a nil provider (disabled config)
// yields a disabled summarizer rather than an error.
func NewSummarizer(cfg Config) (*Summarizer, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return &Summarizer{provider: provider}, nil
}

// Enabled reports whether a provider is configured.
func (s *Summarizer) Enabled() bool { return s != nil && s.provider != nil }

// NegotiationNote generates the note in the given mode.
func (s *Summarizer) NegotiationNote(ctx context.Context, result model.IncreaseResult, mode model.NegotiationMode) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("LLM provider not configured")
	}
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Result: result, Mode: mode})
	if err != nil {
		return "", err
	}
	return resp.Note, nil
}

// BuildPrompt renders the computed result and the requested tone into the
// user prompt.
func BuildPrompt(result model.IncreaseResult, mode model.NegotiationMode) string {
	var b strings.Builder

	switch mode {
	case model.NegotiationAssertive:
		b.WriteString("Tone: assertive. State the legal ceiling firmly and note that any increase above it is not enforceable.\n\n")
	default:
		b.WriteString("Tone: calm. Propose the capped amount constructively and leave room for agreement below it.\n\n")
	}

	fmt.Fprintf(&b, "Current rent: %.2f\n", result.Principal)
	fmt.Fprintf(&b, "Maximum legal rent after increase: %.2f\n", result.FinalAmount)
	b.WriteString("Breakdown:\n")
	for _, entry := range result.Breakdown {
		if entry.Pending {
			fmt.Fprintf(&b, "- %s %s: PENDING (official TÜFE value not yet available)\n",
				entry.Segment, entry.RuleLabel)
			continue
		}
		fmt.Fprintf(&b, "- %s %s: +%.2f (%.2f%%)\n",
			entry.Segment, entry.RuleLabel, *entry.Contribution, *entry.RatePercent)
	}
	if result.RequiresManualEntry {
		b.WriteString("Note: the maximum shown is a lower bound until pending periods are filled in.\n")
	}
	fmt.Fprintf(&b, "\n%s\n", result.Attribution)

	return b.String()
}
