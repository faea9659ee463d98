// Package settings persists the crosshair appearance as a small JSON file.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/iburimskiy/crosshair-overlay/internal/config"
	"github.com/iburimskiy/crosshair-overlay/internal/crosshair"
)

var errMissingField = errors.New("missing field")

// record mirrors the file layout. Pointers tell a missing key apart from a
// zero value.
type record struct {
	Size         *int         `json:"size"`
	Thickness    *int         `json:"thickness"`
	Color        *colorRecord `json:"color"`
	Transparency *int         `json:"transparency"`
}

type colorRecord struct {
	R *int `json:"r"`
	G *int `json:"g"`
	B *int `json:"b"`
}

// Store reads and writes one settings file.
type Store struct {
	path string
}

// NewStore creates a store backed by path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted appearance, or the defaults when the file is
// missing, unreadable, incomplete or out of range. It never fails.
func (s *Store) Load() crosshair.Appearance {
	a, err := s.read()
	if err != nil {
		if config.Debug() {
			log.Printf("settings: using defaults: %v", err)
		}
		return crosshair.Default()
	}
	return a
}

func (s *Store) read() (crosshair.Appearance, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return crosshair.Appearance{}, fmt.Errorf("error reading settings file '%s': %w", s.path, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return crosshair.Appearance{}, fmt.Errorf("error parsing settings file '%s': %w", s.path, err)
	}
	return rec.appearance()
}

func (r record) appearance() (crosshair.Appearance, error) {
	if r.Size == nil {
		return crosshair.Appearance{}, fmt.Errorf("%w: size", errMissingField)
	}
	if r.Thickness == nil {
		return crosshair.Appearance{}, fmt.Errorf("%w: thickness", errMissingField)
	}
	if r.Transparency == nil {
		return crosshair.Appearance{}, fmt.Errorf("%w: transparency", errMissingField)
	}
	if r.Color == nil {
		return crosshair.Appearance{}, fmt.Errorf("%w: color", errMissingField)
	}

	rgb, err := r.Color.rgb()
	if err != nil {
		return crosshair.Appearance{}, err
	}

	a := crosshair.Appearance{
		Radius:    *r.Size,
		Thickness: *r.Thickness,
		Color:     rgb,
		Alpha:     *r.Transparency,
	}
	if !a.Valid() {
		return crosshair.Appearance{}, fmt.Errorf("out of range: %v", a)
	}
	return a, nil
}

func (c colorRecord) rgb() (crosshair.RGB, error) {
	channels := []struct {
		name string
		v    *int
	}{{"color.r", c.R}, {"color.g", c.G}, {"color.b", c.B}}

	var out [3]uint8
	for i, ch := range channels {
		if ch.v == nil {
			return crosshair.RGB{}, fmt.Errorf("%w: %s", errMissingField, ch.name)
		}
		if *ch.v < 0 || *ch.v > 255 {
			return crosshair.RGB{}, fmt.Errorf("out of range: %s=%d", ch.name, *ch.v)
		}
		out[i] = uint8(*ch.v)
	}
	return crosshair.RGB{R: out[0], G: out[1], B: out[2]}, nil
}

func newRecord(a crosshair.Appearance) record {
	r, g, b := int(a.Color.R), int(a.Color.G), int(a.Color.B)
	return record{
		Size:         &a.Radius,
		Thickness:    &a.Thickness,
		Color:        &colorRecord{R: &r, G: &g, B: &b},
		Transparency: &a.Alpha,
	}
}

// Save overwrites the settings file with a. The new content replaces the
// old file in one rename, so a failed save leaves the previous file as it was.
func (s *Store) Save(a crosshair.Appearance) error {
	data, err := json.MarshalIndent(newRecord(a), "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("error saving settings to '%s': %w", s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving settings to '%s': %w", s.path, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving settings to '%s': %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving settings to '%s': %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error saving settings to '%s': %w", s.path, err)
	}
	return nil
}
