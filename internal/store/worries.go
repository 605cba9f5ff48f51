package store

import (
	"fmt"
	"strings"
	"time"

	"lucid-cli/internal/model"

	"github.com/google/uuid"
)

const worriesKey = "worries_v1"

// Recorder receives journal activity for the history log. Implementations
// must be best-effort; a recorder can never block or fail a mutation.
type Recorder interface {
	Record(event string, worryID string, detail string)
}

// Worries owns the canonical in-memory worry collection. Every mutation
// produces a fresh slice and is followed by a persistence write — immediate
// for data the user must not lose. All other components see snapshots and
// route mutations through these operations.
type Worries struct {
	kv  *KV
	rec Recorder

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string

	list []model.Worry
}

func OpenWorries(kv *KV, rec Recorder) *Worries {
	ws := &Worries{
		kv:    kv,
		rec:   rec,
		Now:   time.Now,
		NewID: uuid.NewString,
	}
	var loaded []model.Worry
	if kv.Load(worriesKey, &loaded) {
		for i, w := range loaded {
			loaded[i] = model.Normalize(w)
		}
		ws.list = loaded
	}
	return ws
}

func (ws *Worries) Len() int { return len(ws.list) }

// All returns a snapshot copy; callers never hold a writable alias into the
// collection.
func (ws *Worries) All() []model.Worry {
	out := make([]model.Worry, len(ws.list))
	copy(out, ws.list)
	return out
}

func (ws *Worries) Get(id string) (model.Worry, bool) {
	for _, w := range ws.list {
		if w.ID == id {
			return w, true
		}
	}
	return model.Worry{}, false
}

// Add constructs a new pending worry and prepends it to the collection.
// Display order is always recomputed at render time, so insertion order only
// serves as the tie-break for due polling.
func (ws *Worries) Add(text string, checkDate time.Time, category model.Category, reframing *model.Reframing) model.Worry {
	if reframing.Empty() {
		reframing = nil
	}
	w := model.Worry{
		ID:        ws.NewID(),
		Text:      strings.TrimSpace(text),
		CreatedAt: model.TimeMillis(ws.Now()),
		CheckDate: model.TimeMillis(checkDate),
		Status:    model.StatusPending,
		Category:  category,
		Reframing: reframing,
	}
	next := make([]model.Worry, 0, len(ws.list)+1)
	next = append(next, w)
	next = append(next, ws.list...)
	ws.list = next
	ws.persist()
	ws.record("captured", w.ID, w.Text)
	return w
}

// Resolve transitions a worry to a terminal status, optionally attaching a
// reflection. Unknown ids are a silent no-op: the UI never offers actions on
// records it does not display.
func (ws *Worries) Resolve(id string, status model.Status, reflection string) {
	if !status.Terminal() {
		return
	}
	idx := -1
	for i, w := range ws.list {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := make([]model.Worry, len(ws.list))
	copy(next, ws.list)
	next[idx].Status = status
	next[idx].Reflection = strings.TrimSpace(reflection)
	ws.list = next
	ws.persist()
	ws.record("resolved", id, string(status))
}

// Remove deletes a worry; no-op if absent.
func (ws *Worries) Remove(id string) {
	idx := -1
	for i, w := range ws.list {
		if w.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	next := make([]model.Worry, 0, len(ws.list)-1)
	next = append(next, ws.list[:idx]...)
	next = append(next, ws.list[idx+1:]...)
	ws.list = next
	ws.persist()
	ws.record("deleted", id, "")
}

// ReplaceAll swaps in a wholesale new collection (import/reset). Every record
// must pass the plausibility check and ids must be unique; on rejection the
// prior state is kept untouched.
func (ws *Worries) ReplaceAll(records []model.Worry) error {
	seen := make(map[string]struct{}, len(records))
	next := make([]model.Worry, 0, len(records))
	for i, w := range records {
		if err := model.CheckWorry(w); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if _, dup := seen[w.ID]; dup {
			return fmt.Errorf("record %d: duplicate id %q: %w", i, w.ID, model.ErrBadWorry)
		}
		seen[w.ID] = struct{}{}
		next = append(next, model.Normalize(w))
	}
	ws.list = next
	ws.persist()
	ws.record("imported", "", fmt.Sprintf("%d records", len(next)))
	return nil
}

// Clear empties the collection without validation (reset flow).
func (ws *Worries) Clear() {
	ws.list = nil
	ws.kv.Remove(worriesKey)
	ws.record("reset", "", "")
}

// Due returns all pending worries whose check date has elapsed, in collection
// order. Collection order is the documented tie-break when several records
// share a check date, so the first element is a deterministic pick.
func (ws *Worries) Due(now time.Time) []model.Worry {
	var out []model.Worry
	for _, w := range ws.list {
		if w.Due(now) {
			out = append(out, w)
		}
	}
	return out
}

func (ws *Worries) persist() {
	// Worry data is never worth losing to a debounce window.
	ws.kv.Save(worriesKey, ws.list)
}

func (ws *Worries) record(event, worryID, detail string) {
	if ws.rec != nil {
		ws.rec.Record(event, worryID, detail)
	}
}
