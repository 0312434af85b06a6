package ngram

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/samcharles93/songsmith/internal/tokenizer"
)

// Registry holds the current model for each mode. Training swaps the model
// reference under the mode's write lock, so readers see either the previous
// model or the new one, never a partially built one.
type Registry struct {
	slots    map[Mode]*slot
	stateDir string
}

type slot struct {
	mu    sync.RWMutex
	model Model
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithStateDir makes the registry persist each trained model as
// <dir>/<mode>.json and enables Restore.
func WithStateDir(dir string) RegistryOption {
	return func(r *Registry) {
		r.stateDir = dir
	}
}

// NewRegistry returns a registry with every mode untrained.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{slots: make(map[Mode]*slot, len(Modes))}
	for _, m := range Modes {
		r.slots[m] = &slot{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Model returns the current model for mode, or nil when untrained.
func (r *Registry) Model(mode Mode) (Model, error) {
	s, err := r.slot(mode)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.model, nil
}

// Train builds a model from corpus and installs it as the current model for
// mode. On failure the previous model is left in place.
func (r *Registry) Train(corpus tokenizer.Corpus, mode Mode) (Model, error) {
	s, err := r.slot(mode)
	if err != nil {
		return nil, err
	}
	model, err := Train(corpus, mode)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
	return model, nil
}

// Set installs model directly, replacing whatever was there.
func (r *Registry) Set(model Model) error {
	if model == nil {
		return ErrUntrainedModel
	}
	s, err := r.slot(model.Mode())
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.model = model
	s.mu.Unlock()
	return nil
}

// Restore loads any snapshots present in the state directory and returns
// the modes that were restored. A missing snapshot is not an error.
func (r *Registry) Restore() ([]Mode, error) {
	if r.stateDir == "" {
		return nil, nil
	}
	var restored []Mode
	for _, mode := range Modes {
		model, err := LoadFile(r.snapshotPath(mode))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return restored, fmt.Errorf("restore %s model: %w", mode, err)
		}
		if model.Mode() != mode {
			return restored, fmt.Errorf("restore %s model: %w: snapshot holds a %s model", mode, ErrBadSnapshot, model.Mode())
		}
		if err := r.Set(model); err != nil {
			return restored, err
		}
		restored = append(restored, mode)
	}
	return restored, nil
}

func (r *Registry) slot(mode Mode) (*slot, error) {
	s, ok := r.slots[mode]
	if !ok {
		return nil, &InvalidModeError{Value: mode.String()}
	}
	return s, nil
}

func (r *Registry) snapshotPath(mode Mode) string {
	return filepath.Join(r.stateDir, mode.String()+".json")
}

// Persist writes model to the state directory. It is a no-op when the
// registry has no state directory.
func (r *Registry) Persist(model Model) error {
	if model == nil {
		return ErrUntrainedModel
	}
	if r.stateDir == "" {
		return nil
	}
	return SaveFile(r.snapshotPath(model.Mode()), model)
}

// SaveFile writes model to path through a temporary file and a rename, so a
// crash never leaves a truncated snapshot behind.
func SaveFile(path string, model Model) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()
	if err := Save(tmp, model); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// LoadFile reads a snapshot written by SaveFile.
func LoadFile(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}
