package model

import (
	"fmt"
	"math"
	"strings"
)

// Summary aggregates resolved outcomes into the headline "lucidity rate":
// the percentage of resolved worries that did not materialize.
type Summary struct {
	Total        int
	Pending      int
	Happened     int
	DidNotHappen int

	// LucidityRate is only meaningful when Resolved() > 0.
	LucidityRate int
}

func (s Summary) Resolved() int {
	return s.Happened + s.DidNotHappen
}

func (s Summary) RateLabel() string {
	if s.Resolved() == 0 {
		return "--"
	}
	return fmt.Sprintf("%d%%", s.LucidityRate)
}

func Summarize(ws []Worry) Summary {
	var s Summary
	for _, w := range ws {
		s.Total++
		switch w.Status {
		case StatusHappened:
			s.Happened++
		case StatusDidNotHappen:
			s.DidNotHappen++
		default:
			s.Pending++
		}
	}
	if r := s.Resolved(); r > 0 {
		s.LucidityRate = int(math.Round(float64(s.DidNotHappen) / float64(r) * 100))
	}
	return s
}

var comfortPhrases = []string{
	"Breathe. Your thoughts are not reality.",
	"Anxiety often lies; the numbers prove it.",
	"It is normal to be afraid. Look at the facts.",
	"You are moving forward, little by little.",
	"Be kind to yourself. Just observe.",
	"This number is only a beginning.",
}

// Phrase picks the dashboard encouragement line for the current summary.
// Below 65% the line rotates with the resolved count so repeat visits do not
// always show the same sentence.
func Phrase(s Summary, userName string) string {
	name := strings.TrimSpace(userName)
	if s.Resolved() == 0 {
		if name != "" {
			return fmt.Sprintf("Hello %s. Lock away a first thought to get started.", name)
		}
		return "Lock away a first worry to start building your lucidity."
	}
	switch {
	case s.LucidityRate >= 90:
		if name != "" {
			return fmt.Sprintf("Well done %s. Your fears are almost always illusions.", name)
		}
		return "Your fears are almost always illusions."
	case s.LucidityRate >= 75:
		return "Reality is much gentler than your thoughts."
	case s.LucidityRate >= 65:
		if name != "" {
			return fmt.Sprintf("%s, you are taking back control.", name)
		}
		return "You are taking back control."
	default:
		return comfortPhrases[s.Resolved()%len(comfortPhrases)]
	}
}
