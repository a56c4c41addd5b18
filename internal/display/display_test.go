package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quotekeeper/quotes/internal/types"
)

func plainRenderer(buf *bytes.Buffer) *Renderer {
	return NewRenderer(buf, ResolveTheme("none"))
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"fits", "short text", 20, []string{"short text"}},
		{"wraps on words", "one two three four", 9, []string{"one two", "three", "four"}},
		{"long word alone", "a extraordinarily b", 10, []string{"a", "extraordinarily", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestQuoteBoxContents(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	q := types.NewQuote("Know thyself.", "Socrates", "Delphi inscription", "saw this in a museum", nil)
	r.QuoteBox(q)

	out := buf.String()
	for _, want := range []string{"Know thyself.", "— Socrates, Delphi inscription", "note: saw this in a museum"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestQuoteLineTruncates(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer(&buf)

	long := strings.Repeat("word ", 30)
	q := types.NewQuote(long, "Author", "", "", nil)
	r.QuoteLine(q)

	if !strings.Contains(buf.String(), "...") {
		t.Errorf("expected long text truncated with ellipsis:\n%s", buf.String())
	}
}

func TestResolveThemeEnvOverride(t *testing.T) {
	t.Setenv("QUOTES_THEME", "high-contrast")
	if got := ResolveTheme("dark"); got.Name != "high-contrast" {
		t.Errorf("theme = %q, want env override to win", got.Name)
	}
}

func TestResolveThemeUnknownFallsBack(t *testing.T) {
	t.Setenv("QUOTES_THEME", "")
	if got := ResolveTheme("sparkles"); got.Name != "auto" {
		t.Errorf("theme = %q, want auto fallback", got.Name)
	}
}
