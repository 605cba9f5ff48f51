// Package export handles the data exchange boundary: JSON export/import of
// the worry collection and calendar-invite generation. Nothing here touches
// the store; malformed input is rejected before any state changes.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"lucid-cli/internal/model"
)

// Marshal serializes the full collection for a portable backup file. The
// layout matches the persisted worries key, so a backup can also be restored
// by older tool versions.
func Marshal(ws []model.Worry) ([]byte, error) {
	if ws == nil {
		ws = []model.Worry{}
	}
	return json.MarshalIndent(ws, "", "  ")
}

func WriteFile(path string, ws []model.Worry) error {
	b, err := Marshal(ws)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

// Parse validates a user-supplied backup. The input must be a JSON array and
// every element must be a plausible worry record; anything else is rejected
// so the caller's store stays exactly as it was.
func Parse(data []byte) ([]model.Worry, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotWorryList, err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, fmt.Errorf("%w: top-level value is not an array", model.ErrNotWorryList)
	}

	var ws []model.Worry
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrNotWorryList, err)
	}
	for i, w := range ws {
		if err := model.CheckWorry(w); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return ws, nil
}

func ReadFile(path string) ([]model.Worry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ws, err := Parse(b)
	if err != nil {
		if errors.Is(err, model.ErrNotWorryList) || errors.Is(err, model.ErrBadWorry) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}
	return ws, nil
}
