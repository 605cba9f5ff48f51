package store

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucid-cli/internal/model"
)

type memRecorder struct {
	events []string
}

func (r *memRecorder) Record(event, worryID, detail string) {
	r.events = append(r.events, event)
}

func newTestWorries(t *testing.T) (*Worries, *memRecorder) {
	t.Helper()
	rec := &memRecorder{}
	ws := OpenWorries(NewKV(t.TempDir(), testLogger()), rec)
	n := 0
	ws.NewID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	return ws, rec
}

func TestAddCreatesPending(t *testing.T) {
	ws, rec := newTestWorries(t)
	check := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	w := ws.Add("  the demo will crash  ", check, model.CategoryWork, nil)

	assert.Equal(t, "the demo will crash", w.Text)
	assert.Equal(t, model.StatusPending, w.Status)
	assert.Equal(t, model.TimeMillis(check), w.CheckDate)
	assert.Equal(t, 1, ws.Len())
	assert.Equal(t, []string{"captured"}, rec.events)
}

func TestAddDropsEmptyReframing(t *testing.T) {
	ws, _ := newTestWorries(t)
	w := ws.Add("x", time.Now(), model.CategoryOther, &model.Reframing{})
	assert.Nil(t, w.Reframing)
}

func TestResolveOverwritesReflection(t *testing.T) {
	ws, _ := newTestWorries(t)
	w := ws.Add("x", time.Now(), model.CategoryOther, nil)

	ws.Resolve(w.ID, model.StatusHappened, "it did")
	got, ok := ws.Get(w.ID)
	require.True(t, ok)
	assert.Equal(t, model.StatusHappened, got.Status)
	assert.Equal(t, "it did", got.Reflection)

	// A later resolution silently replaces both status and reflection.
	ws.Resolve(w.ID, model.StatusDidNotHappen, "actually not")
	got, _ = ws.Get(w.ID)
	assert.Equal(t, model.StatusDidNotHappen, got.Status)
	assert.Equal(t, "actually not", got.Reflection)
}

func TestResolveIgnoresNonTerminalAndUnknown(t *testing.T) {
	ws, rec := newTestWorries(t)
	w := ws.Add("x", time.Now(), model.CategoryOther, nil)
	rec.events = nil

	ws.Resolve(w.ID, model.StatusPending, "")
	ws.Resolve("no-such-id", model.StatusHappened, "")

	got, _ := ws.Get(w.ID)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Empty(t, rec.events)
}

func TestRemove(t *testing.T) {
	ws, _ := newTestWorries(t)
	a := ws.Add("a", time.Now(), model.CategoryOther, nil)
	b := ws.Add("b", time.Now(), model.CategoryOther, nil)

	ws.Remove(a.ID)
	assert.Equal(t, 1, ws.Len())
	_, ok := ws.Get(a.ID)
	assert.False(t, ok)
	_, ok = ws.Get(b.ID)
	assert.True(t, ok)

	ws.Remove("no-such-id") // no-op
	assert.Equal(t, 1, ws.Len())
}

func TestDueFiltersAndKeepsOrder(t *testing.T) {
	ws, _ := newTestWorries(t)
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	past := ws.Add("oldest due", now.Add(-2*time.Hour), model.CategoryOther, nil)
	pastToo := ws.Add("newest due", now.Add(-time.Hour), model.CategoryOther, nil)
	ws.Add("future", now.Add(time.Hour), model.CategoryOther, nil)
	done := ws.Add("done", now.Add(-time.Hour), model.CategoryOther, nil)
	ws.Resolve(done.ID, model.StatusDidNotHappen, "")

	due := ws.Due(now)
	require.Len(t, due, 2)
	// Collection order is newest-first; it is the deterministic tie-break for
	// which worry gets offered.
	assert.Equal(t, pastToo.ID, due[0].ID)
	assert.Equal(t, past.ID, due[1].ID)
}

func TestDueSkipsInvalidCheckDate(t *testing.T) {
	ws, _ := newTestWorries(t)
	require.NoError(t, ws.ReplaceAll([]model.Worry{
		{ID: "a", Text: "no date", Status: model.StatusPending, CheckDate: 0},
	}))
	assert.Empty(t, ws.Due(time.Now()))
}

func TestReplaceAllRejectsBadRecords(t *testing.T) {
	ws, _ := newTestWorries(t)
	kept := ws.Add("keep me", time.Now(), model.CategoryOther, nil)

	err := ws.ReplaceAll([]model.Worry{
		{ID: "ok", Text: "fine", CreatedAt: 1, CheckDate: 2},
		{ID: "", Text: "missing id"},
	})
	require.ErrorIs(t, err, model.ErrBadWorry)

	// Rejection leaves the prior collection untouched.
	require.Equal(t, 1, ws.Len())
	_, ok := ws.Get(kept.ID)
	assert.True(t, ok)
}

func TestReplaceAllRejectsDuplicateIDs(t *testing.T) {
	ws, _ := newTestWorries(t)
	err := ws.ReplaceAll([]model.Worry{
		{ID: "dup", Text: "one", CreatedAt: 1, CheckDate: 2},
		{ID: "dup", Text: "two", CreatedAt: 1, CheckDate: 2},
	})
	assert.ErrorIs(t, err, model.ErrBadWorry)
}

func TestReplaceAllNormalizes(t *testing.T) {
	ws, _ := newTestWorries(t)
	require.NoError(t, ws.ReplaceAll([]model.Worry{
		{ID: "a", Text: "x", CreatedAt: 1, CheckDate: 2}, // no status in the export
	}))
	got, ok := ws.Get("a")
	require.True(t, ok)
	assert.Equal(t, model.StatusPending, got.Status)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	kv := NewKV(dir, testLogger())

	ws := OpenWorries(kv, nil)
	w := ws.Add("survives restarts", time.Now(), model.CategoryHealth, nil)

	again := OpenWorries(NewKV(dir, testLogger()), nil)
	got, ok := again.Get(w.ID)
	require.True(t, ok)
	assert.Equal(t, "survives restarts", got.Text)
	assert.Equal(t, model.CategoryHealth, got.Category)
}

func TestClear(t *testing.T) {
	ws, rec := newTestWorries(t)
	ws.Add("x", time.Now(), model.CategoryOther, nil)
	ws.Clear()
	assert.Equal(t, 0, ws.Len())
	assert.Contains(t, rec.events, "reset")
}
