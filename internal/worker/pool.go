package worker

import (
	"context"
	"sync"
)

// Job is a unit of work executed by the pool.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is the outcome of a job.
type Result interface {
	Err() error
}

// Pool runs jobs across a fixed number of goroutines. Evaluations for
// different agreements are independent; ordering within one evaluation is
// the calculator's concern, not the pool's.
//
// The results channel is bounded: callers must drain Results concurrently
// with submission (a ResultCollector goroutine does), otherwise workers
// stall once the buffer fills.
type Pool struct {
	workers   int
	jobs      chan Job
	results   chan Result
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewPool creates a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		workers: workers,
		jobs:    make(chan Job, workers*2),
		results: make(chan Result, workers*2),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			result := job.Execute(p.ctx)
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit queues a job. Submissions after Shutdown are dropped.
func (p *Pool) Submit(job Job) {
	select {
	case <-p.ctx.Done():
	case p.jobs <- job:
	}
}

// Results returns the channel results arrive on. It is closed after Finish
// (or Shutdown) once the workers have stopped.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Finish closes the job queue and, once the workers drain it, closes the
// results channel. Submission must be complete before calling Finish.
func (p *Pool) Finish() {
	close(p.jobs)
	go func() {
		p.wg.Wait()
		p.closeResults()
	}()
}

// Shutdown stops the pool immediately.
func (p *Pool) Shutdown() {
	p.cancel()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() { close(p.results) })
}

// ResultCollector accumulates results as they arrive (thread-safe).
type ResultCollector struct {
	results []Result
	mu      sync.Mutex
}

// NewResultCollector creates an empty collector.
func NewResultCollector() *ResultCollector {
	return &ResultCollector{results: make([]Result, 0)}
}

// Add appends a result.
func (c *ResultCollector) Add(result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

// Results returns all collected results.
func (c *ResultCollector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}
