package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ustaoglu/kiracap/internal/model"
)

// Evaluator computes an increase result for one agreement.
type Evaluator interface {
	ComputeForWindow(ctx context.Context, principal float64, agreementStart, evaluationDate time.Time) (*model.IncreaseResult, error)
}

// EvalJob evaluates one agreement line from a batch file.
type EvalJob struct {
	Line      int
	Principal float64
	Start     time.Time
	AsOf      time.Time
	Evaluator Evaluator
}

// Execute runs the evaluation.
func (j *EvalJob) Execute(ctx context.Context) Result {
	result, err := j.Evaluator.ComputeForWindow(ctx, j.Principal, j.Start, j.AsOf)
	return &EvalResult{Line: j.Line, Result: result, Error: err}
}

// EvalResult is the outcome of one agreement evaluation.
type EvalResult struct {
	Line   int
	Result *model.IncreaseResult
	Error  error
}

// Err returns the evaluation error, if any.
func (r *EvalResult) Err() error { return r.Error }

// BatchProcessor evaluates many agreements concurrently. Each line of the
// input file is "principal,start,asOf"; blank lines and #-comments are
// skipped.
type BatchProcessor struct {
	evaluator   Evaluator
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(evaluator Evaluator, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &BatchProcessor{evaluator: evaluator, concurrency: concurrency}
}

// ProcessFile evaluates every agreement in the file and returns results
// ordered by input line.
func (b *BatchProcessor) ProcessFile(ctx context.Context, path string) ([]*EvalResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer func() { _ = f.Close() }()

	pool := NewPool(b.concurrency)
	pool.Start()

	// Drain results while submitting: the pool's channels are bounded, so
	// collection must run concurrently or a large file stalls the workers.
	collector := NewResultCollector()
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for result := range pool.Results() {
			collector.Add(result)
		}
	}()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		job, err := parseLine(line, text)
		if err != nil {
			pool.Shutdown()
			<-drained
			return nil, err
		}
		job.Evaluator = b.evaluator
		pool.Submit(job)
	}
	if err := scanner.Err(); err != nil {
		pool.Shutdown()
		<-drained
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	pool.Finish()
	<-drained

	raw := collector.Results()
	results := make([]*EvalResult, 0, len(raw))
	for _, r := range raw {
		results = append(results, r.(*EvalResult))
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Line < results[j].Line })
	return results, nil
}

func parseLine(line int, text string) (*EvalJob, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("line %d: want principal,start,asOf, got %q", line, text)
	}

	principal, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("line %d: principal: %w", line, err)
	}
	start, err := time.Parse(model.DateLayout, strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("line %d: start date: %w", line, err)
	}
	asOf, err := time.Parse(model.DateLayout, strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("line %d: as-of date: %w", line, err)
	}

	return &EvalJob{Line: line, Principal: principal, Start: start, AsOf: asOf}, nil
}
