package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/hanabot/internal/bot"
	"github.com/lox/hanabot/internal/simulator"
	"github.com/lox/hanabot/internal/statistics"
)

const barWidth = 40

// Summary renders a batch report: score statistics, the score histogram
// and how often each rule fired.
func Summary(title string, r *simulator.Report) string {
	s := r.Stats
	low, high := s.ConfidenceInterval95()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(title))
	b.WriteString("\n\n")

	rows := []string{
		field("Games", fmt.Sprintf("%d in %s", s.Games, r.Elapsed.Round(time.Millisecond))),
		field("Mean", fmt.Sprintf("%.2f ± %.2f", s.Mean(), s.StdError())),
		field("95% CI", fmt.Sprintf("[%.2f, %.2f]", low, high)),
		field("Median", fmt.Sprintf("%.1f", s.Median())),
		field("Std dev", fmt.Sprintf("%.2f", s.StdDev())),
		field("Percentiles", fmt.Sprintf("P5=%.0f P25=%.0f P75=%.0f P95=%.0f",
			s.Percentile(0.05), s.Percentile(0.25), s.Percentile(0.75), s.Percentile(0.95))),
		field("Perfect", fmt.Sprintf("%d (%.1f%%)", s.Perfect, s.PerfectRate()*100)),
		field("Fused", fmt.Sprintf("%d (%.1f%%)", s.Fused, s.FusedRate()*100)),
	}
	if s.Games > 0 {
		g := float64(s.Games)
		rows = append(rows, field("Per game", fmt.Sprintf("%.1f turns, %.2f misplays, %.1f hints, %.1f discards",
			float64(s.Turns)/g, float64(s.Misplays)/g, float64(s.HintsGiven)/g, float64(s.Discards)/g)))
	}
	b.WriteString(strings.Join(rows, "\n"))

	b.WriteString("\n\n")
	b.WriteString(Histogram(s))
	b.WriteString("\n")
	b.WriteString(Rules(r.Rules))
	return b.String()
}

// Histogram renders one bar per score that occurred.
func Histogram(s *statistics.Statistics) string {
	peak := 0
	for _, n := range s.Histogram {
		peak = max(peak, n)
	}
	if peak == 0 {
		return ""
	}

	var b strings.Builder
	for score, n := range s.Histogram {
		if n == 0 {
			continue
		}
		width := max(1, n*barWidth/peak)
		fmt.Fprintf(&b, "%s %s %d\n",
			InfoStyle.Render(fmt.Sprintf("%2d", score)),
			BarStyle.Render(strings.Repeat("█", width)),
			n)
	}
	return b.String()
}

// Rules renders the decision count for every rule that fired.
func Rules(counts [bot.NumRules]int) string {
	total := 0
	for _, n := range counts {
		total += n
	}
	if total == 0 {
		return ""
	}

	var b strings.Builder
	for r, n := range counts {
		if n == 0 {
			continue
		}
		b.WriteString(field(bot.Rule(r).String(), fmt.Sprintf("%d (%.1f%%)", n, float64(n)*100/float64(total))))
		b.WriteString("\n")
	}
	return b.String()
}
