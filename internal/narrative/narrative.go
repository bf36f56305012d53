// Package narrative supplies flavor text: mission briefings before each wave
// and commentary on the final score. It has no effect on gameplay.
package narrative

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/astro-arcade/internal/config"
)

// Service looks up text in the configured content tables.
type Service struct {
	briefings  []string
	commentary []config.CommentaryLine // Sorted by MinScore
}

// New builds a service from the narrative config section.
func New(cfg config.NarrativeConfig) *Service {
	lines := slices.Clone(cfg.Commentary)
	slices.SortStableFunc(lines, func(a, b config.CommentaryLine) int {
		return a.MinScore - b.MinScore
	})
	return &Service{
		briefings:  slices.Clone(cfg.Briefings),
		commentary: lines,
	}
}

// BriefingTitle returns the heading shown above a briefing.
func BriefingTitle(wave int) string {
	return fmt.Sprintf("WAVE %d", wave)
}

// Briefing returns the text for a 1-based wave. Waves past the end of the
// table reuse its last entry; an empty table yields "".
func (s *Service) Briefing(wave int) string {
	if len(s.briefings) == 0 {
		return ""
	}
	idx := min(max(wave-1, 0), len(s.briefings)-1)
	return s.briefings[idx]
}

// Commentary returns the line with the highest threshold not above score.
func (s *Service) Commentary(score int) string {
	text := ""
	for _, line := range s.commentary {
		if line.MinScore > score {
			break
		}
		text = line.Text
	}
	return text
}

// Debrief summarizes a finished run.
func (s *Service) Debrief(score, wave, accuracy int) []string {
	lines := []string{
		fmt.Sprintf("Final score: %d", score),
		fmt.Sprintf("Reached wave %d", wave),
		fmt.Sprintf("Accuracy: %d%%", accuracy),
	}
	if c := s.Commentary(score); c != "" {
		lines = append(lines, "", c)
	}
	return lines
}
