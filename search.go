package main

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"
)

// ── Solver ──────────────────────────────────────────────────────────

// Solver enumerates every strictly increasing index combination of SetSize
// items and keeps the ones that form a valid set.
type Solver[T comparable] struct {
	items        []Item[T]
	setSize      int
	variantCount int

	seen       map[T]struct{} // scratch distinct-value set, reused per attribute
	candidates int
	sets       []Group
}

// NewSolver creates a solver over items. Every item must hold exactly
// variantCount values; this is not re-checked.
func NewSolver[T comparable](items []Item[T], setSize, variantCount int) *Solver[T] {
	return &Solver[T]{
		items:        items,
		setSize:      setSize,
		variantCount: variantCount,
		seen:         make(map[T]struct{}, setSize),
	}
}

// FindValidGroups returns all valid groups of setSize items in ascending
// lexicographic order of their indices.
func FindValidGroups[T comparable](items []Item[T], setSize, variantCount int) []Group {
	return NewSolver(items, setSize, variantCount).Solve()
}

// Candidates reports how many complete candidates the last search validated.
func (s *Solver[T]) Candidates() int { return s.candidates }

// Solve runs the full search on the calling goroutine.
func (s *Solver[T]) Solve() []Group {
	s.candidates = 0
	s.sets = nil
	if s.setSize < 1 {
		return nil
	}
	candidate := make(Group, 0, s.setSize)
	for i := 0; i <= len(s.items)-s.setSize; i++ {
		s.extend(candidate, i)
	}
	return s.sets
}

// extend appends next to candidate and either validates the completed group
// or recurses over every later index.
func (s *Solver[T]) extend(candidate Group, next int) {
	if next >= len(s.items) {
		return
	}
	candidate = append(candidate, next)
	if len(candidate) == s.setSize {
		s.candidates++
		if s.valid(candidate) {
			s.sets = append(s.sets, append(Group(nil), candidate...))
		}
		return
	}
	for i := next + 1; i < len(s.items); i++ {
		s.extend(candidate, i)
	}
}

// ── Validation ──────────────────────────────────────────────────────

// valid reports whether, for every attribute, the group's values are all
// equal or all pairwise distinct.
func (s *Solver[T]) valid(group Group) bool {
	for v := 0; v < s.variantCount; v++ {
		clear(s.seen)
		for _, idx := range group {
			s.seen[s.items[idx][v]] = struct{}{}
		}
		if n := len(s.seen); n != 1 && n != s.setSize {
			return false
		}
	}
	return true
}

// ── Parallel search ─────────────────────────────────────────────────

// clone returns a solver sharing the read-only items with fresh scratch state.
func (s *Solver[T]) clone() *Solver[T] {
	return NewSolver(s.items, s.setSize, s.variantCount)
}

// SolveParallel splits the search by starting index across workers. Results
// are merged in starting-index order, so the output equals Solve's.
func (s *Solver[T]) SolveParallel(workers int) []Group {
	if workers <= 1 {
		return s.Solve()
	}
	s.candidates = 0
	s.sets = nil
	if s.setSize < 1 || s.setSize > len(s.items) {
		return nil
	}

	starts := len(s.items) - s.setSize + 1
	parts := make([][]Group, starts)
	var candidates atomic.Int64

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < starts; i++ {
		i := i
		g.Go(func() error {
			worker := s.clone()
			worker.extend(make(Group, 0, s.setSize), i)
			parts[i] = worker.sets
			candidates.Add(int64(worker.candidates))
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	for _, p := range parts {
		s.sets = append(s.sets, p...)
	}
	s.candidates = int(candidates.Load())
	return s.sets
}

// ── Main entry point ────────────────────────────────────────────────

// Run searches items with cfg and returns the result with timing.
func Run[T comparable](items []Item[T], cfg Config) SolveResult {
	start := time.Now()

	workers := cfg.Workers
	if workers > runtime.GOMAXPROCS(0) {
		workers = runtime.GOMAXPROCS(0)
	}
	fmt.Fprintf(logw(), "[init] items=%d, setSize=%d, variants=%d, workers=%d\n",
		len(items), cfg.SetSize, cfg.VariantCount, intMax(workers, 1))

	s := NewSolver(items, cfg.SetSize, cfg.VariantCount)
	sets := s.SolveParallel(workers)
	if sets == nil {
		sets = []Group{}
	}

	elapsed := time.Since(start)
	if Verbose {
		fmt.Fprintf(logw(), "[verbose] validated %s candidates\n", humanize.Comma(int64(s.Candidates())))
	}
	fmt.Fprintf(logw(), "[done] sets=%d, elapsed=%v\n", len(sets), elapsed)

	return SolveResult{
		Sets:       sets,
		Count:      len(sets),
		Candidates: s.Candidates(),
		TimeMs:     elapsed.Milliseconds(),
	}
}

func logw() *os.File { return os.Stderr }

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
