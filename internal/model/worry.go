package model

import (
	"errors"
	"sort"
	"strings"
	"time"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusHappened     Status = "happened"
	StatusDidNotHappen Status = "did_not_happen"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusHappened, StatusDidNotHappen:
		return true
	}
	return false
}

// Terminal reports whether the status is an end state. A worry reaches a
// terminal status exactly once, through the verification flow.
func (s Status) Terminal() bool {
	return s == StatusHappened || s == StatusDidNotHappen
}

type Category string

const (
	CategoryWork    Category = "work"
	CategoryHealth  Category = "health"
	CategorySocial  Category = "social"
	CategoryFinance Category = "finance"
	CategoryOther   Category = "other"
)

func Categories() []Category {
	return []Category{CategoryWork, CategoryHealth, CategorySocial, CategoryFinance, CategoryOther}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryHealth, CategorySocial, CategoryFinance, CategoryOther:
		return true
	}
	return false
}

func (c Category) Label() string {
	switch c {
	case CategoryWork:
		return "Work"
	case CategoryHealth:
		return "Health"
	case CategorySocial:
		return "Social"
	case CategoryFinance:
		return "Finance"
	case CategoryOther:
		return "Other"
	}
	return string(c)
}

// Reframing holds the optional CBT-style fields captured alongside a worry.
type Reframing struct {
	RationalThought string `json:"rationalThought,omitempty"`
	ActionPlan      string `json:"actionPlan,omitempty"`
}

func (r *Reframing) Empty() bool {
	return r == nil || (strings.TrimSpace(r.RationalThought) == "" && strings.TrimSpace(r.ActionPlan) == "")
}

// Worry is the single persisted entity: an anxious prediction with a future
// verification instant. Timestamps are Unix milliseconds to keep exports
// portable across tool versions.
type Worry struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	CreatedAt int64      `json:"createdAt"`
	CheckDate int64      `json:"checkDate"`
	Status    Status     `json:"status"`
	Category  Category   `json:"category,omitempty"`
	Reframing *Reframing `json:"reframing,omitempty"`
	// Reflection is set only at resolution time.
	Reflection string `json:"reflection,omitempty"`
}

func (w Worry) Resolved() bool {
	return w.Status.Terminal()
}

// Due reports whether a pending worry's check date has passed. A missing or
// non-positive check date is never due; persisted data can drift across
// versions and we read it permissively.
func (w Worry) Due(now time.Time) bool {
	if w.Status != StatusPending {
		return false
	}
	if w.CheckDate <= 0 {
		return false
	}
	return w.CheckDate <= TimeMillis(now)
}

func TimeMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func MillisTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

var (
	ErrNotWorryList = errors.New("not a worry list")
	ErrBadWorry     = errors.New("implausible worry record")
)

// CheckWorry validates a record loosely enough to accept exports from older
// tool versions: id/text must be present, timestamps plausible, and the
// status one of the known values (absent status decodes as pending).
func CheckWorry(w Worry) error {
	if strings.TrimSpace(w.ID) == "" {
		return ErrBadWorry
	}
	if strings.TrimSpace(w.Text) == "" {
		return ErrBadWorry
	}
	if w.CreatedAt < 0 || w.CheckDate < 0 {
		return ErrBadWorry
	}
	if w.Status != "" && !w.Status.Valid() {
		return ErrBadWorry
	}
	if w.Category != "" && !w.Category.Valid() {
		return ErrBadWorry
	}
	return nil
}

// Normalize fills defaults a permissive decode may have left out.
func Normalize(w Worry) Worry {
	if w.Status == "" {
		w.Status = StatusPending
	}
	if w.Reframing.Empty() {
		w.Reframing = nil
	}
	return w
}

// SortForDisplay returns a copy ordered by creation time, newest first.
// The stored collection keeps insertion order; display order is derived.
func SortForDisplay(ws []Worry) []Worry {
	out := make([]Worry, len(ws))
	copy(out, ws)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out
}
