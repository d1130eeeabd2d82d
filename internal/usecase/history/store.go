// Package history keeps a bounded, in-process log of past searches per user.
//
// The store is deliberately volatile: it starts empty, lives for the process
// lifetime, and is discarded at shutdown. Analytics derived from it are
// therefore approximate. Nothing here persists.
package history

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// MaxEntriesPerUser bounds each user's log; the oldest entry is evicted first.
const MaxEntriesPerUser = 100

// Entry is one recorded search.
type Entry struct {
	Timestamp   time.Time
	Term        string
	SearchType  string
	ResultCount int
	UserID      string
}

// TermCount pairs a search term with its frequency.
type TermCount struct {
	Term  string
	Count int
}

// Report aggregates history across all users within a time window.
type Report struct {
	TotalSearches  int
	UniqueUsers    int
	AverageResults float64
	TopTerms       []TermCount
}

// Store is a process-wide, per-user FIFO log of search history.
// Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	byUser   map[string][]Entry
	capacity int
}

// NewStore creates an empty history store with the default per-user capacity.
func NewStore() *Store {
	return &Store{byUser: make(map[string][]Entry), capacity: MaxEntriesPerUser}
}

// Log appends one entry for userID, evicting the oldest entry past capacity.
// It never fails.
func (s *Store) Log(userID, term, searchType string, resultCount int) {
	if userID == "" {
		return
	}
	entry := Entry{
		Timestamp:   time.Now(),
		Term:        term,
		SearchType:  searchType,
		ResultCount: resultCount,
		UserID:      userID,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.byUser[userID], entry)
	if len(entries) > s.capacity {
		entries = entries[len(entries)-s.capacity:]
	}
	s.byUser[userID] = entries
}

// History returns up to limit entries for userID, most recent first.
func (s *Store) History(userID string, limit int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.byUser[userID]
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	out := make([]Entry, limit)
	for i := 0; i < limit; i++ {
		out[i] = entries[len(entries)-1-i]
	}
	return out
}

// RecentTerms returns up to limit distinct terms for userID, most recent
// first. Duplicate terms (case-insensitive) keep their most recent position.
func (s *Store) RecentTerms(userID string, limit int) []string {
	entries := s.History(userID, 0)

	seen := make(map[string]bool, len(entries))
	terms := make([]string, 0, limit)
	for _, e := range entries {
		key := strings.ToLower(e.Term)
		if seen[key] {
			continue
		}
		seen[key] = true
		terms = append(terms, e.Term)
		if limit > 0 && len(terms) == limit {
			break
		}
	}
	return terms
}

// Analytics aggregates all in-memory history within [start, end].
// Counts are approximate: per-user logs are bounded and lost on restart.
func (s *Store) Analytics(start, end time.Time) Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		total      int
		resultSum  int
		users      = make(map[string]bool)
		termCounts = make(map[string]int)
	)
	for userID, entries := range s.byUser {
		for _, e := range entries {
			if e.Timestamp.Before(start) || e.Timestamp.After(end) {
				continue
			}
			total++
			resultSum += e.ResultCount
			users[userID] = true
			termCounts[strings.ToLower(e.Term)]++
		}
	}

	report := Report{
		TotalSearches: total,
		UniqueUsers:   len(users),
	}
	if total > 0 {
		report.AverageResults = float64(resultSum) / float64(total)
	}
	report.TopTerms = topTerms(termCounts, 10)
	return report
}

// Clear removes all history for one user.
func (s *Store) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}

// ClearAll removes all history.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUser = make(map[string][]Entry)
}

func topTerms(counts map[string]int, n int) []TermCount {
	terms := make([]TermCount, 0, len(counts))
	for term, count := range counts {
		terms = append(terms, TermCount{Term: term, Count: count})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
