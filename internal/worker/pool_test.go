package worker

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// wordJob counts the words of one clause, optionally after a delay
type wordJob struct {
	text  string
	delay time.Duration
	fail  bool
	runs  *atomic.Int32
	probe *gauge
}

type wordResult struct {
	text  string
	words int
	err   error
}

func (r *wordResult) GetError() error { return r.err }

func (j *wordJob) Execute(ctx context.Context) Result {
	if j.runs != nil {
		j.runs.Add(1)
	}
	if j.probe != nil {
		j.probe.enter()
		defer j.probe.leave()
	}
	if j.delay > 0 {
		select {
		case <-time.After(j.delay):
		case <-ctx.Done():
			return &wordResult{text: j.text, err: ctx.Err()}
		}
	}
	if j.fail {
		return &wordResult{text: j.text, err: errors.New("unreadable clause")}
	}
	return &wordResult{text: j.text, words: len(strings.Fields(j.text))}
}

// gauge records the peak number of concurrently running jobs
type gauge struct {
	current atomic.Int32
	peak    atomic.Int32
}

func (g *gauge) enter() {
	n := g.current.Add(1)
	for {
		p := g.peak.Load()
		if n <= p || g.peak.CompareAndSwap(p, n) {
			return
		}
	}
}

func (g *gauge) leave() { g.current.Add(-1) }

func TestNewPool_Width(t *testing.T) {
	for in, want := range map[int]int{8: 8, 1: 1, 0: 1, -4: 1} {
		if got := NewPool(in).workers; got != want {
			t.Errorf("NewPool(%d).workers = %d, want %d", in, got, want)
		}
	}
}

func TestPool_CountsEveryClause(t *testing.T) {
	clauses := []string{
		"The Vendor shall deliver the goods.",
		"Payment is due within 30 days.",
		"This Agreement is governed by the laws of India.",
		"Either party may terminate on notice.",
	}

	var runs atomic.Int32
	pool := NewPool(3)
	pool.Start()
	for _, c := range clauses {
		pool.Submit(&wordJob{text: c, runs: &runs})
	}
	results := pool.Wait()

	if len(results) != len(clauses) {
		t.Fatalf("expected %d results, got %d", len(clauses), len(results))
	}
	if runs.Load() != int32(len(clauses)) {
		t.Errorf("expected %d executions, got %d", len(clauses), runs.Load())
	}

	total := 0
	for _, r := range results {
		total += r.(*wordResult).words
	}
	if total != 6+6+9+6 {
		t.Errorf("expected 27 words in total, got %d", total)
	}
}

func TestPool_RespectsWidth(t *testing.T) {
	const width = 4
	probe := &gauge{}

	pool := NewPool(width)
	pool.Start()
	for i := 0; i < 40; i++ {
		pool.Submit(&wordJob{text: "clause", delay: 5 * time.Millisecond, probe: probe})
	}
	results := pool.Wait()

	if len(results) != 40 {
		t.Errorf("expected 40 results, got %d", len(results))
	}
	if peak := probe.peak.Load(); peak > width {
		t.Errorf("peak concurrency %d exceeded width %d", peak, width)
	}
}

func TestPool_KeepsFailures(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Submit(&wordJob{text: "ok"})
	pool.Submit(&wordJob{text: "bad", fail: true})
	pool.Submit(&wordJob{text: "also ok"})

	failed := 0
	for _, r := range pool.Wait() {
		if r.GetError() != nil {
			failed++
		}
	}
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d", failed)
	}
}

func TestPool_LargeBacklog(t *testing.T) {
	pool := NewPool(1)
	pool.Start()

	done := make(chan int)
	go func() {
		for i := 0; i < 200; i++ {
			pool.Submit(&wordJob{text: "a b"})
		}
		done <- len(pool.Wait())
	}()

	select {
	case n := <-done:
		if n != 200 {
			t.Errorf("expected 200 results, got %d", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pool stalled with unread results")
	}
}

func TestPool_SubmitAfterShutdownReturns(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	done := make(chan struct{})
	go func() {
		pool.Submit(&wordJob{text: "late"})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked after Shutdown")
	}
}

func TestPool_ShutdownCancelsRunningJob(t *testing.T) {
	pool := NewPool(1)
	pool.Start()

	var runs atomic.Int32
	pool.Submit(&wordJob{text: "slow", delay: time.Minute, runs: &runs})
	for runs.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	finished := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Shutdown did not cancel the running job")
	}
}

func TestPool_ParentCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPoolContext(ctx, 2)
	pool.Start()

	pool.Submit(&wordJob{text: "slow", delay: time.Second})
	cancel()

	for _, r := range pool.Wait() {
		if !errors.Is(r.GetError(), context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", r.GetError())
		}
	}
}

func TestResultCollector_Snapshot(t *testing.T) {
	c := NewResultCollector()
	c.Add(&wordResult{text: "a"})
	snapshot := c.Results()
	c.Add(&wordResult{text: "b"})

	if len(snapshot) != 1 {
		t.Errorf("snapshot changed after Add: %d results", len(snapshot))
	}
	if len(c.Results()) != 2 {
		t.Errorf("expected 2 results, got %d", len(c.Results()))
	}
}
