package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// SentimentBadge styles a sentiment label.
func SentimentBadge(sentiment string) string {
	switch sentiment {
	case "positive":
		return StyleSuccess.Render(sentiment)
	case "negative":
		return StyleError.Render(sentiment)
	default:
		return StyleMuted.Render(sentiment)
	}
}

// ResolutionBadge styles a resolution label.
func ResolutionBadge(resolution string) string {
	if resolution == "resolved" {
		return StyleSuccess.Render(resolution)
	}
	return StyleWarning.Render(resolution)
}

// EscalationBadge styles an escalation label.
func EscalationBadge(escalation string) string {
	if escalation == "needed" {
		return StyleError.Render(escalation)
	}
	return StyleMuted.Render(escalation)
}

// Seconds formats a duration in seconds for display.
func Seconds(s float64) string {
	if s >= 3600 {
		return fmt.Sprintf("%.1fh", s/3600)
	}
	if s >= 60 {
		return fmt.Sprintf("%.1fm", s/60)
	}
	return fmt.Sprintf("%.1fs", s)
}
