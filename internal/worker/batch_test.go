package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
)

// fixedEvaluator applies a flat 25% once, enough to exercise the pool.
type fixedEvaluator struct{}

func (fixedEvaluator) ComputeForWindow(ctx context.Context, principal float64, start, asOf time.Time) (*model.IncreaseResult, error) {
	return &model.IncreaseResult{
		Principal:   principal,
		FinalAmount: principal * 1.25,
	}, nil
}

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agreements.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessFile_OrderedResults(t *testing.T) {
	path := writeBatchFile(t, `# principal,start,asOf
10000,2024-01-01,2024-12-31

20000,2023-06-01,2024-06-01
5000,2024-02-01,2024-05-01
`)

	processor := NewBatchProcessor(fixedEvaluator{}, 3)
	results, err := processor.ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile error: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	wantPrincipals := []float64{10000, 20000, 5000}
	for i, r := range results {
		if r.Error != nil {
			t.Errorf("result %d error: %v", i, r.Error)
		}
		if r.Result.Principal != wantPrincipals[i] {
			t.Errorf("result %d principal = %v, want %v (input order)", i, r.Result.Principal, wantPrincipals[i])
		}
	}
}

func TestProcessFile_LargeFileSingleWorker(t *testing.T) {
	// Many more lines than the pool's channel buffers can hold: results
	// must be drained while submission is still in progress or the single
	// worker stalls and ProcessFile never returns.
	var content strings.Builder
	const lines = 100
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&content, "%d,2024-01-01,2024-12-31\n", 1000+i)
	}
	path := writeBatchFile(t, content.String())

	processor := NewBatchProcessor(fixedEvaluator{}, 1)

	type outcome struct {
		results []*EvalResult
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := processor.ProcessFile(context.Background(), path)
		done <- outcome{results, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			t.Fatalf("ProcessFile error: %v", out.err)
		}
		if len(out.results) != lines {
			t.Fatalf("got %d results, want %d", len(out.results), lines)
		}
		for i, r := range out.results {
			if want := float64(1000 + i); r.Result.Principal != want {
				t.Errorf("result %d principal = %v, want %v (input order)", i, r.Result.Principal, want)
			}
		}
	case <-time.After(10 * time.Second):
		t.Fatal("ProcessFile did not return; submission and result collection are not overlapping")
	}
}

func TestProcessFile_MalformedLine(t *testing.T) {
	path := writeBatchFile(t, "10000,2024-01-01\n")

	processor := NewBatchProcessor(fixedEvaluator{}, 2)
	if _, err := processor.ProcessFile(context.Background(), path); err == nil {
		t.Fatal("ProcessFile with malformed line = nil error, want error")
	}
}

func TestProcessFile_MissingFile(t *testing.T) {
	processor := NewBatchProcessor(fixedEvaluator{}, 2)
	if _, err := processor.ProcessFile(context.Background(), "does-not-exist.csv"); err == nil {
		t.Fatal("ProcessFile on missing file = nil error, want error")
	}
}
