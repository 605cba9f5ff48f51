package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	ws := []Worry{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusHappened},
		{Status: StatusDidNotHappen},
	}
	s := Summarize(ws)

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.Happened)
	assert.Equal(t, 1, s.DidNotHappen)
	assert.Equal(t, 2, s.Resolved())
	assert.Equal(t, 50, s.LucidityRate)
	assert.Equal(t, "50%", s.RateLabel())
}

func TestSummarizeRounding(t *testing.T) {
	ws := []Worry{
		{Status: StatusDidNotHappen},
		{Status: StatusDidNotHappen},
		{Status: StatusHappened},
	}
	// 2/3 = 66.67, rounds to 67 rather than truncating.
	assert.Equal(t, 67, Summarize(ws).LucidityRate)
}

func TestSummarizeNothingResolved(t *testing.T) {
	s := Summarize([]Worry{{Status: StatusPending}})
	assert.Equal(t, 0, s.Resolved())
	assert.Equal(t, "--", s.RateLabel(), "rate is undefined until something resolves")
}

func TestPhraseThresholds(t *testing.T) {
	mk := func(didNot, happened int) Summary {
		return Summarize(append(
			repeat(StatusDidNotHappen, didNot),
			repeat(StatusHappened, happened)...,
		))
	}

	assert.Contains(t, Phrase(mk(0, 0), ""), "first worry")
	assert.Contains(t, Phrase(mk(0, 0), "Ada"), "Ada")

	assert.Equal(t, "Your fears are almost always illusions.", Phrase(mk(9, 1), ""))
	assert.Contains(t, Phrase(mk(9, 1), "Ada"), "Well done Ada")
	assert.Equal(t, "Reality is much gentler than your thoughts.", Phrase(mk(8, 2), ""))
	assert.Equal(t, "You are taking back control.", Phrase(mk(7, 3), ""))

	// Below 65% the phrase rotates with the resolved count.
	low := mk(1, 1)
	assert.Equal(t, comfortPhrases[2%len(comfortPhrases)], Phrase(low, ""))
}

func repeat(st Status, n int) []Worry {
	out := make([]Worry, n)
	for i := range out {
		out[i] = Worry{Status: st}
	}
	return out
}
