package llm

import (
	"strings"
	"testing"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
)

func sampleResult(pending bool) model.IncreaseResult {
	seg := model.PeriodSegment{
		Start: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	entry := model.BreakdownEntry{Segment: seg, RuleLabel: "CPI-indexed (TÜFE) cap", Pending: pending}
	if !pending {
		rate, contribution := 44.0, 5500.0
		entry.RatePercent = &rate
		entry.Contribution = &contribution
	}
	return model.IncreaseResult{
		Principal:           12500,
		FinalAmount:         18000,
		Breakdown:           []model.BreakdownEntry{entry},
		RequiresManualEntry: pending,
		Attribution:         model.Attribution,
	}
}

func TestBuildPrompt_QuotesAmounts(t *testing.T) {
	prompt := BuildPrompt(sampleResult(false), model.NegotiationCalm)

	for _, want := range []string{"12500.00", "18000.00", "44.00%", model.Attribution} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "Tone: calm") {
		t.Error("calm mode not reflected in prompt")
	}
}

func TestBuildPrompt_AssertiveMode(t *testing.T) {
	prompt := BuildPrompt(sampleResult(false), model.NegotiationAssertive)
	if !strings.Contains(prompt, "Tone: assertive") {
		t.Error("assertive mode not reflected in prompt")
	}
}

func TestBuildPrompt_PendingNeverNumeric(t *testing.T) {
	prompt := BuildPrompt(sampleResult(true), model.NegotiationCalm)
	if !strings.Contains(prompt, "PENDING") {
		t.Error("pending segment not marked in prompt")
	}
	if strings.Contains(prompt, "+0.00") {
		t.Error("pending segment rendered as a computed zero")
	}
}

func TestNewProvider_DisabledAndUnknown(t *testing.T) {
	p, err := NewProvider(Config{})
	if err != nil || p != nil {
		t.Errorf("NewProvider(empty) = (%v, %v), want (nil, nil)", p, err)
	}

	if _, err := NewProvider(Config{Provider: "scraper"}); err == nil {
		t.Error("NewProvider(unknown) = nil error, want error")
	}
}
