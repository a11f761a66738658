package repository

import (
	"context"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/okian/volunteer-match/internal/domain/model"
)

// Seed is the on-disk fixture format for volunteers and events.
// A volunteer without an active key is loaded as active.
type Seed struct {
	Volunteers []model.Volunteer `yaml:"volunteers"`
	Events     []model.Event     `yaml:"events"`
}

// seedVolunteer decodes a volunteer with Active defaulting to true.
type seedVolunteer model.Volunteer

func (v *seedVolunteer) UnmarshalYAML(n *yaml.Node) error {
	raw := model.Volunteer{Active: true}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	*v = seedVolunteer(raw)
	return nil
}

// UnmarshalYAML decodes a seed document, applying volunteer defaults.
func (s *Seed) UnmarshalYAML(n *yaml.Node) error {
	var raw struct {
		Volunteers []seedVolunteer `yaml:"volunteers"`
		Events     []model.Event   `yaml:"events"`
	}
	if err := n.Decode(&raw); err != nil {
		return err
	}
	s.Volunteers = make([]model.Volunteer, len(raw.Volunteers))
	for i, v := range raw.Volunteers {
		s.Volunteers[i] = model.Volunteer(v)
	}
	s.Events = raw.Events
	return nil
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return seed, nil
}

// LoadSeed reads the YAML file at path into store and returns how many
// volunteers and events were loaded.
func LoadSeed(ctx context.Context, store Store, path string) (int, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, fmt.Errorf("read seed %s: %w", path, err)
	}
	seed, err := ParseSeed(data)
	if err != nil {
		return 0, 0, err
	}
	return Apply(ctx, store, seed)
}

// Apply validates every record in seed and then writes them into store.
// Nothing is written when any record is invalid.
func Apply(ctx context.Context, store Store, seed Seed) (int, int, error) {
	for _, v := range seed.Volunteers {
		if err := validateVolunteer(v); err != nil {
			return 0, 0, err
		}
	}
	for _, e := range seed.Events {
		if err := validateEvent(e); err != nil {
			return 0, 0, err
		}
	}

	for _, v := range seed.Volunteers {
		if err := store.PutVolunteer(ctx, v); err != nil {
			return 0, 0, err
		}
	}
	for _, e := range seed.Events {
		if err := store.PutEvent(ctx, e); err != nil {
			return 0, 0, err
		}
	}
	return len(seed.Volunteers), len(seed.Events), nil
}

func validateVolunteer(v model.Volunteer) error {
	for _, s := range v.Skills {
		if !model.IsKnownSkill(s) {
			return fmt.Errorf("%w: volunteer %q has unknown skill %q", ErrInvalidSeed, v.ID, s)
		}
	}
	for _, c := range v.Preferences.EventTypes {
		if !model.IsKnownCategory(c) {
			return fmt.Errorf("%w: volunteer %q prefers unknown event type %q", ErrInvalidSeed, v.ID, c)
		}
	}
	return nil
}

// validateEvent accepts an empty status or event type as unset.
func validateEvent(e model.Event) error {
	if e.Status != "" && !e.Status.Valid() {
		return fmt.Errorf("%w: event %q has unknown status %q", ErrInvalidSeed, e.ID, e.Status)
	}
	if e.EventType != "" && !model.IsKnownCategory(e.EventType) {
		return fmt.Errorf("%w: event %q has unknown event type %q", ErrInvalidSeed, e.ID, e.EventType)
	}
	for _, s := range e.RequiredSkills {
		if !model.IsKnownSkill(s) {
			return fmt.Errorf("%w: event %q requires unknown skill %q", ErrInvalidSeed, e.ID, s)
		}
	}
	return nil
}
