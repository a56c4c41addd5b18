package dedup

import (
	"context"
	"errors"
	"testing"

	"github.com/quotekeeper/quotes/internal/types"
)

// fakeOracle serves scripted scores keyed by candidate text and records
// every comparison it is asked to make.
type fakeOracle struct {
	available bool
	scores    map[string]float64
	failures  map[string]error
	compared  []string
}

func (f *fakeOracle) Available() bool { return f.available }

func (f *fakeOracle) Compare(ctx context.Context, textA, textB string) (float64, string, error) {
	f.compared = append(f.compared, textB)
	if err, ok := f.failures[textB]; ok {
		return 0, "", err
	}
	return f.scores[textB], "scripted", nil
}

func quoteWithText(text string) *types.Quote {
	return types.NewQuote(text, "Test Author", "", "", nil)
}

func newTestScanner(t *testing.T, oracle Oracle, cfg Config) *Scanner {
	t.Helper()
	s, err := NewScanner(oracle, cfg)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	return s
}

func TestScanEmptyTextRejected(t *testing.T) {
	oracle := &fakeOracle{available: true}
	s := newTestScanner(t, oracle, DefaultConfig())

	for _, text := range []string{"", "   ", "\t\n"} {
		_, _, err := s.Scan(context.Background(), text, []*types.Quote{quoteWithText("some stored quote here")})
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("Scan(%q) error = %v, want ErrEmptyText", text, err)
		}
	}
	if len(oracle.compared) != 0 {
		t.Errorf("oracle consulted %d times for empty text, want 0", len(oracle.compared))
	}
}

func TestScanUnavailableOracle(t *testing.T) {
	oracle := &fakeOracle{available: false, scores: map[string]float64{}}
	s := newTestScanner(t, oracle, DefaultConfig())

	text := "the only way to do great work"
	candidates := []*types.Quote{quoteWithText("the only way to do great work is to love it")}

	matches, stats, err := s.Scan(context.Background(), text, candidates)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches from unavailable oracle, want 0", len(matches))
	}
	if len(oracle.compared) != 0 {
		t.Errorf("oracle consulted %d times while unavailable, want 0", len(oracle.compared))
	}
	if stats.Compared != 0 {
		t.Errorf("stats.Compared = %d, want 0", stats.Compared)
	}
}

func TestScanPrefilterGatesOracle(t *testing.T) {
	sharesEnough := "life is what happens to you while making other plans"
	sharesTooFew := "simplicity carries profound elegance"

	oracle := &fakeOracle{
		available: true,
		scores:    map[string]float64{sharesEnough: 0.2, sharesTooFew: 0.99},
	}
	s := newTestScanner(t, oracle, DefaultConfig())

	text := "life is what happens when you are busy making plans"
	_, stats, err := s.Scan(context.Background(), text, []*types.Quote{
		quoteWithText(sharesEnough),
		quoteWithText(sharesTooFew),
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(oracle.compared) != 1 || oracle.compared[0] != sharesEnough {
		t.Errorf("oracle compared %v, want only the candidate sharing words", oracle.compared)
	}
	if stats.Prefiltered != 1 {
		t.Errorf("stats.Prefiltered = %d, want 1", stats.Prefiltered)
	}
}

func TestScanThresholdInclusive(t *testing.T) {
	atThreshold := "my life is what happens here"
	belowThreshold := "their life is what happens there"

	oracle := &fakeOracle{
		available: true,
		scores:    map[string]float64{atThreshold: 0.70, belowThreshold: 0.69},
	}
	s := newTestScanner(t, oracle, DefaultConfig())

	matches, _, err := s.Scan(context.Background(), "life is what happens", []*types.Quote{
		quoteWithText(atThreshold),
		quoteWithText(belowThreshold),
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if matches[0].Candidate.Text != atThreshold {
		t.Errorf("match = %q, want the candidate scored exactly at 0.70", matches[0].Candidate.Text)
	}
}

func TestScanSkipsFailedComparisons(t *testing.T) {
	failing := "life is what happens sometimes"
	succeeding := "life is what happens always"

	oracle := &fakeOracle{
		available: true,
		scores:    map[string]float64{succeeding: 0.9},
		failures:  map[string]error{failing: errors.New("rate limited")},
	}
	s := newTestScanner(t, oracle, DefaultConfig())

	matches, stats, err := s.Scan(context.Background(), "life is what happens", []*types.Quote{
		quoteWithText(failing),
		quoteWithText(succeeding),
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if stats.Skipped != 1 {
		t.Errorf("stats.Skipped = %d, want 1", stats.Skipped)
	}
	if len(matches) != 1 || matches[0].Candidate.Text != succeeding {
		t.Errorf("matches = %v, want only the succeeding candidate", matches)
	}
}

func TestScanOrdersByScoreDescending(t *testing.T) {
	low := "life is what happens low"
	high := "life is what happens high"
	midA := "life is what happens first"
	midB := "life is what happens second"

	oracle := &fakeOracle{
		available: true,
		scores:    map[string]float64{low: 0.71, high: 0.96, midA: 0.85, midB: 0.85},
	}
	s := newTestScanner(t, oracle, DefaultConfig())

	matches, _, err := s.Scan(context.Background(), "life is what happens", []*types.Quote{
		quoteWithText(low),
		quoteWithText(midA),
		quoteWithText(midB),
		quoteWithText(high),
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	var got []string
	for _, m := range matches {
		got = append(got, m.Candidate.Text)
	}
	want := []string{high, midA, midB, low} // ties keep candidate order
	if len(got) != len(want) {
		t.Fatalf("got %d matches, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("matches[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSimilarityLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "exact match"},
		{0.95, "exact match"},
		{0.94, "high similarity"},
		{0.85, "high similarity"},
		{0.84, "medium similarity"},
		{0.70, "medium similarity"},
	}
	for _, tt := range tests {
		if got := SimilarityLevel(tt.score); got != tt.want {
			t.Errorf("SimilarityLevel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
