// Package store persists all journal state under a single data directory:
// one JSON file per key/value pair plus a sqlite activity log.
package store

import (
	"log/slog"
	"os"
)

type Store struct {
	Dir     string
	KV      *KV
	Worries *Worries

	// History is best-effort; nil when the sqlite log could not be opened.
	History *History
}

// Open loads (or initializes) the store rooted at dir.
func Open(dir string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{Dir: dir, KV: NewKV(dir, log)}

	hist, err := OpenHistory(dir)
	if err != nil {
		// The journal works without its activity log.
		log.Warn("store: history log unavailable", "err", err)
	} else {
		s.History = hist
	}

	s.Worries = OpenWorries(s.KV, s.History)
	return s, nil
}

// Close flushes pending debounced writes and releases the history db. Must
// run before process teardown or the last debounced mutation can be lost.
func (s *Store) Close() {
	s.KV.FlushPending()
	if s.History != nil {
		_ = s.History.Close()
	}
}

// Reset wipes every persisted key, empties the in-memory collection and
// clears the activity log. Worry text must not survive a reset anywhere,
// including the log's detail column.
func (s *Store) Reset() {
	s.Worries.Clear()
	s.KV.Remove(onboardingKey)
	s.KV.Remove(userNameKey)
	s.KV.Remove(themeKey)
	_ = s.History.Clear()
}
