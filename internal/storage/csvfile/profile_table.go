package csvfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/carson-networks/budget-coach/internal/storage/profile"
)

var _ profile.IProfileTable = (*ProfileTable)(nil)

// ProfileTable stores the single profile in profile.json.
type ProfileTable struct {
	store *Store
}

func (t *ProfileTable) Get(_ context.Context) (*profile.Profile, error) {
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()

	var p profile.Profile
	ok, err := t.store.read(ProfileFile, func(r io.Reader) error {
		return json.NewDecoder(r).Decode(&p)
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", ProfileFile, err)
	}
	if !ok {
		return nil, profile.ErrNotFound
	}
	return &p, nil
}

func (t *ProfileTable) Put(_ context.Context, p *profile.Profile) error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	err := t.store.write(ProfileFile, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", ProfileFile, err)
	}
	return nil
}
