package dedup

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/quotekeeper/quotes/internal/types"
)

// ErrEmptyText is returned by Scan when the incoming quote text is blank.
var ErrEmptyText = errors.New("quote text is empty")

// Oracle judges the semantic similarity of two quote texts. Compare
// returns a score in [0,1] and a short rationale. Available reports
// whether the oracle can serve requests at all; when it cannot, the
// scanner skips the scan entirely.
type Oracle interface {
	Available() bool
	Compare(ctx context.Context, textA, textB string) (score float64, rationale string, err error)
}

// Match is a stored quote the oracle judged similar to the incoming text.
type Match struct {
	Candidate *types.Quote
	Score     float64
	Rationale string
}

// Level buckets a match score into a human label.
func (m Match) Level() string {
	return SimilarityLevel(m.Score)
}

// SimilarityLevel maps a score to the label shown to the user.
func SimilarityLevel(score float64) string {
	switch {
	case score >= 0.95:
		return "exact match"
	case score >= 0.85:
		return "high similarity"
	default:
		return "medium similarity"
	}
}

// ScanStats summarizes what a scan did, mostly for verbose output.
type ScanStats struct {
	Candidates  int // quotes in the snapshot
	Prefiltered int // candidates discarded by the lexical pre-filter
	Compared    int // oracle calls made
	Skipped     int // oracle calls that failed and were skipped
}

// Scanner runs the duplicate detection pipeline over a snapshot of stored
// quotes.
type Scanner struct {
	oracle Oracle
	cfg    Config
}

// NewScanner returns a Scanner using the given oracle and configuration.
func NewScanner(oracle Oracle, cfg Config) (*Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dedup config: %w", err)
	}
	return &Scanner{oracle: oracle, cfg: cfg}, nil
}

// Scan compares text against every candidate and returns the matches at
// or above the similarity threshold, ordered by descending score (ties
// keep candidate order). Candidates whose oracle call fails are skipped
// and counted in stats. When the oracle is unavailable the scan returns
// no matches without consulting it.
func (s *Scanner) Scan(ctx context.Context, text string, candidates []*types.Quote) ([]Match, ScanStats, error) {
	stats := ScanStats{Candidates: len(candidates)}

	if strings.TrimSpace(text) == "" {
		return nil, stats, ErrEmptyText
	}
	if s.oracle == nil || !s.oracle.Available() {
		return nil, stats, nil
	}

	incoming := tokenSet(text)

	var matches []Match
	for _, candidate := range candidates {
		if commonTokens(incoming, tokenSet(candidate.Text)) < s.cfg.MinCommonTokens {
			stats.Prefiltered++
			continue
		}

		stats.Compared++
		score, rationale, err := s.compareOne(ctx, text, candidate.Text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, stats, ctx.Err()
			}
			stats.Skipped++
			continue
		}
		if score >= s.cfg.SimilarityThreshold {
			matches = append(matches, Match{Candidate: candidate, Score: score, Rationale: rationale})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches, stats, nil
}

func (s *Scanner) compareOne(ctx context.Context, textA, textB string) (float64, string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()
	return s.oracle.Compare(callCtx, textA, textB)
}
