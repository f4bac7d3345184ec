package output

import (
	"strings"
	"testing"
)

func TestScoreBar(t *testing.T) {
	SetNoColor(true)

	tests := []struct {
		score      float64
		width      int
		wantFilled int
		wantEmpty  int
	}{
		{80, 10, 8, 2},
		{0, 10, 0, 10},
		{100, 10, 10, 0},
		{50, 20, 10, 10},
	}

	for _, tc := range tests {
		got := ScoreBar(tc.score, tc.width)
		if n := strings.Count(got, "█"); n != tc.wantFilled {
			t.Errorf("ScoreBar(%v, %d): %d filled cells, want %d", tc.score, tc.width, n, tc.wantFilled)
		}
		if n := strings.Count(got, "░"); n != tc.wantEmpty {
			t.Errorf("ScoreBar(%v, %d): %d empty cells, want %d", tc.score, tc.width, n, tc.wantEmpty)
		}
		if !strings.Contains(got, "/100") {
			t.Errorf("ScoreBar(%v, %d) = %q, missing score suffix", tc.score, tc.width, got)
		}
	}
}

func TestScoreBar_DefaultWidth(t *testing.T) {
	SetNoColor(true)

	got := ScoreBar(50, 0)
	if n := strings.Count(got, "█") + strings.Count(got, "░"); n != 20 {
		t.Errorf("default bar has %d cells, want 20", n)
	}
}

func TestBadges(t *testing.T) {
	SetNoColor(true)

	for _, label := range []string{"positive", "neutral", "negative"} {
		if got := SentimentBadge(label); got != label {
			t.Errorf("SentimentBadge(%q) = %q with color off", label, got)
		}
	}
	for _, label := range []string{"resolved", "unresolved"} {
		if got := ResolutionBadge(label); got != label {
			t.Errorf("ResolutionBadge(%q) = %q with color off", label, got)
		}
	}
	for _, label := range []string{"needed", "not_needed"} {
		if got := EscalationBadge(label); got != label {
			t.Errorf("EscalationBadge(%q) = %q with color off", label, got)
		}
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "12.5s"},
		{0, "0.0s"},
		{90, "1.5m"},
		{5400, "1.5h"},
	}

	for _, tc := range tests {
		if got := Seconds(tc.in); got != tc.want {
			t.Errorf("Seconds(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
