package store

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// KV is a key/value adapter over one JSON file per key. Writes are atomic
// (unique temp file + rename) so a crash mid-write can never corrupt a key.
// Durability is best-effort: a failed write is logged and dropped, a failed
// read yields the caller's fallback. Your data, your device.
type KV struct {
	dir string
	log *slog.Logger

	mu      sync.Mutex
	pending map[string]*pendingWrite
}

type pendingWrite struct {
	timer *time.Timer
	data  []byte
}

func NewKV(dir string, log *slog.Logger) *KV {
	if log == nil {
		log = slog.Default()
	}
	return &KV{
		dir:     filepath.Clean(dir),
		log:     log,
		pending: map[string]*pendingWrite{},
	}
}

func (kv *KV) path(key string) string {
	return filepath.Join(kv.dir, key+".json")
}

// Save serializes v and writes it under key immediately, superseding any
// debounced write still pending for the same key.
func (kv *KV) Save(key string, v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		kv.log.Warn("kv: dropping write, marshal failed", "key", key, "err", err)
		return
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	if p, ok := kv.pending[key]; ok {
		p.timer.Stop()
		delete(kv.pending, key)
	}
	kv.write(key, b)
}

// DebouncedSave coalesces rapid repeated writes to the same key into one
// write after delay of inactivity. A new call for the same key cancels the
// pending write and restarts the timer with the fresh value.
func (kv *KV) DebouncedSave(key string, v any, delay time.Duration) {
	if delay <= 0 {
		kv.Save(key, v)
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		kv.log.Warn("kv: dropping debounced write, marshal failed", "key", key, "err", err)
		return
	}

	kv.mu.Lock()
	defer kv.mu.Unlock()
	if p, ok := kv.pending[key]; ok {
		p.data = b
		p.timer.Reset(delay)
		return
	}
	p := &pendingWrite{data: b}
	p.timer = time.AfterFunc(delay, func() { kv.commit(key) })
	kv.pending[key] = p
}

func (kv *KV) commit(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	p, ok := kv.pending[key]
	if !ok {
		// Flushed (or superseded by an immediate save) before the timer ran.
		return
	}
	delete(kv.pending, key)
	kv.write(key, p.data)
}

// FlushPending commits all outstanding debounced writes now. Call before the
// process exits, otherwise the most recent mutation inside the debounce
// window is lost. Idempotent: with nothing pending it does nothing.
func (kv *KV) FlushPending() {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	for key, p := range kv.pending {
		p.timer.Stop()
		kv.write(key, p.data)
		delete(kv.pending, key)
	}
}

// Load reads and deserializes key into `into`. Absent or corrupt data is
// treated as absent, not as a fatal error: `into` is left untouched and
// Load reports false so the caller keeps its fallback.
func (kv *KV) Load(key string, into any) bool {
	b, err := os.ReadFile(kv.path(key))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			kv.log.Warn("kv: read failed, using fallback", "key", key, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(b, into); err != nil {
		kv.log.Warn("kv: corrupt value, using fallback", "key", key, "err", err)
		return false
	}
	return true
}

// Remove deletes a key unconditionally, cancelling any pending write for it.
func (kv *KV) Remove(key string) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if p, ok := kv.pending[key]; ok {
		p.timer.Stop()
		delete(kv.pending, key)
	}
	if err := os.Remove(kv.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		kv.log.Warn("kv: remove failed", "key", key, "err", err)
	}
}

// write must run with kv.mu held. Keeping the file write inside the lock
// orders it against pending-map changes: a debounce timer that fires
// concurrently with Save either writes before Save's pop+write, or finds its
// entry gone and writes nothing. Values are a few KB at most, so holding the
// lock across the write is fine.
func (kv *KV) write(key string, b []byte) {
	if err := os.MkdirAll(kv.dir, 0o755); err != nil {
		kv.log.Warn("kv: dropping write", "key", key, "err", err)
		return
	}
	if err := atomicWriteFile(kv.dir, key+".json.*.tmp", kv.path(key), b, 0o600); err != nil {
		kv.log.Warn("kv: dropping write", "key", key, "err", err)
	}
}

// atomicWriteFile writes via a unique temp file + rename to avoid clobbering
// or torn writes when several processes touch the same key.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// DataDir resolves the per-user data directory.
// LUCID_DATA_DIR overrides (keeps unit tests from touching ~/.lucid).
func DataDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("LUCID_DATA_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lucid"), nil
}
