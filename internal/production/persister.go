// Package production provides production integrations for the switch:
// snapshot persistence to disk in JSON or YAML form.

package production

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/comalice/edgeswitch"
)

// JSONPersister is a file-based persister using JSON serialization.
type JSONPersister struct {
	dir string
}

// NewJSONPersister creates a JSONPersister, ensuring the directory exists.
func NewJSONPersister(dir string) (*JSONPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONPersister{dir: dir}, nil
}

// Save writes the snapshot, assigning a fresh UUID when its ID is empty,
// and returns the snapshot as stored.
func (p *JSONPersister) Save(ctx context.Context, snap edgeswitch.Snapshot) (edgeswitch.Snapshot, error) {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return edgeswitch.Snapshot{}, fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(p.dir, snap.ID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return edgeswitch.Snapshot{}, fmt.Errorf("write %s: %w", fn, err)
	}

	return snap, nil
}

// Load reads the snapshot with the given ID.
func (p *JSONPersister) Load(ctx context.Context, id string) (edgeswitch.Snapshot, error) {
	fn := filepath.Join(p.dir, id+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return edgeswitch.Snapshot{}, fmt.Errorf("snapshot %q: %w", id, os.ErrNotExist)
		}
		return edgeswitch.Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snap edgeswitch.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return edgeswitch.Snapshot{}, fmt.Errorf("json unmarshal: %w", err)
	}
	snap.ID = id // Ensure ID

	if err := validate(snap); err != nil {
		return edgeswitch.Snapshot{}, err
	}

	return snap, nil
}

// YAMLPersister is a file-based persister using YAML serialization.
type YAMLPersister struct {
	dir string
}

// NewYAMLPersister creates a YAMLPersister, ensuring the directory exists.
func NewYAMLPersister(dir string) (*YAMLPersister, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLPersister{dir: dir}, nil
}

// Save writes the snapshot, assigning a fresh UUID when its ID is empty,
// and returns the snapshot as stored.
func (p *YAMLPersister) Save(ctx context.Context, snap edgeswitch.Snapshot) (edgeswitch.Snapshot, error) {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return edgeswitch.Snapshot{}, fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(p.dir, snap.ID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return edgeswitch.Snapshot{}, fmt.Errorf("write %s: %w", fn, err)
	}

	return snap, nil
}

// Load reads the snapshot with the given ID.
func (p *YAMLPersister) Load(ctx context.Context, id string) (edgeswitch.Snapshot, error) {
	fn := filepath.Join(p.dir, id+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return edgeswitch.Snapshot{}, fmt.Errorf("snapshot %q: %w", id, os.ErrNotExist)
		}
		return edgeswitch.Snapshot{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var snap edgeswitch.Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return edgeswitch.Snapshot{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	snap.ID = id // Ensure ID

	if err := validate(snap); err != nil {
		return edgeswitch.Snapshot{}, err
	}

	return snap, nil
}

// validate rejects snapshots a switch could never have produced. Restore
// enforces the same invariant; checking at load time catches hand-edited
// files before they reach a caller.
func validate(snap edgeswitch.Snapshot) error {
	if snap.Rose && snap.Fell {
		return fmt.Errorf("snapshot %q: %w", snap.ID, edgeswitch.ErrInvalidSnapshot)
	}
	return nil
}
