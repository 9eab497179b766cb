// Package session persists the calculator stack between runs.
package session

import (
	"encoding/json"
	"time"

	"github.com/metafates/gache"
	"github.com/vpcalc/vpcalc/calc"
	"github.com/vpcalc/vpcalc/filesystem"
	"github.com/vpcalc/vpcalc/where"
)

// Snapshot is the stored form of a stack.
type Snapshot struct {
	// Stack holds the values from top to bottom.
	Stack   []float64 `json:"stack"`
	SavedAt time.Time `json:"saved_at"`
}

type snapshotJSON struct {
	Stack   calc.Values `json:"stack"`
	SavedAt time.Time   `json:"saved_at"`
}

// MarshalJSON keeps overflowed values, which encoding/json rejects as numbers.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	return json.Marshal(snapshotJSON{Stack: s.Stack, SavedAt: s.SavedAt})
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	var raw snapshotJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Stack, s.SavedAt = raw.Stack, raw.SavedAt
	return nil
}

var cacher = gache.New[*Snapshot](
	&gache.Options{
		Path:       where.Session(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Load returns the saved stack, top first. It is empty when nothing was saved.
func Load() ([]float64, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil || cached.Stack == nil {
		return []float64{}, nil
	}
	return cached.Stack, nil
}

// Save stores contents, top first, replacing any previous snapshot.
func Save(contents []float64) error {
	return cacher.Set(&Snapshot{
		Stack:   contents,
		SavedAt: time.Now(),
	})
}

// Forget replaces the saved snapshot with an empty stack.
func Forget() error {
	return Save([]float64{})
}
