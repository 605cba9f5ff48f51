package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusHappened.Terminal())
	assert.True(t, StatusDidNotHappen.Terminal())
	assert.False(t, Status("bogus").Terminal())
}

func TestWorryDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	due := Worry{Status: StatusPending, CheckDate: TimeMillis(now.Add(-time.Minute))}
	assert.True(t, due.Due(now))

	exact := Worry{Status: StatusPending, CheckDate: TimeMillis(now)}
	assert.True(t, exact.Due(now), "check date equal to now counts as due")

	future := Worry{Status: StatusPending, CheckDate: TimeMillis(now.Add(time.Minute))}
	assert.False(t, future.Due(now))

	resolved := Worry{Status: StatusDidNotHappen, CheckDate: TimeMillis(now.Add(-time.Hour))}
	assert.False(t, resolved.Due(now), "terminal worries are never due")

	// Records with a missing or mangled check date must never fire.
	assert.False(t, Worry{Status: StatusPending, CheckDate: 0}.Due(now))
	assert.False(t, Worry{Status: StatusPending, CheckDate: -5}.Due(now))
}

func TestCheckWorry(t *testing.T) {
	ok := Worry{ID: "a", Text: "it will go wrong", CreatedAt: 1, CheckDate: 2}
	require.NoError(t, CheckWorry(ok))

	// Absent status is accepted and later normalized to pending.
	require.NoError(t, CheckWorry(Worry{ID: "a", Text: "x"}))

	assert.ErrorIs(t, CheckWorry(Worry{Text: "x"}), ErrBadWorry)
	assert.ErrorIs(t, CheckWorry(Worry{ID: "a", Text: "   "}), ErrBadWorry)
	assert.ErrorIs(t, CheckWorry(Worry{ID: "a", Text: "x", CreatedAt: -1}), ErrBadWorry)
	assert.ErrorIs(t, CheckWorry(Worry{ID: "a", Text: "x", Status: "maybe"}), ErrBadWorry)
	assert.ErrorIs(t, CheckWorry(Worry{ID: "a", Text: "x", Category: "pets"}), ErrBadWorry)
}

func TestNormalize(t *testing.T) {
	w := Normalize(Worry{ID: "a", Text: "x"})
	assert.Equal(t, StatusPending, w.Status)

	w = Normalize(Worry{ID: "a", Text: "x", Reframing: &Reframing{}})
	assert.Nil(t, w.Reframing, "empty reframing collapses to nil")

	keep := &Reframing{RationalThought: "probably fine"}
	w = Normalize(Worry{ID: "a", Text: "x", Reframing: keep})
	assert.Equal(t, keep, w.Reframing)
}

func TestSortForDisplay(t *testing.T) {
	in := []Worry{
		{ID: "old", CreatedAt: 100},
		{ID: "new", CreatedAt: 300},
		{ID: "mid", CreatedAt: 200},
	}
	out := SortForDisplay(in)

	require.Len(t, out, 3)
	assert.Equal(t, "new", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
	assert.Equal(t, "old", out[2].ID)
	// Input must stay untouched.
	assert.Equal(t, "old", in[0].ID)
}
