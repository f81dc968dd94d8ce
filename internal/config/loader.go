package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("invalid scenario")

type ArenaConfig struct {
	Seed          int64            `yaml:"seed"`
	Ticks         int              `yaml:"ticks"`
	AllianceEvery int              `yaml:"alliance_every"`
	Room          RoomDef          `yaml:"room"`
	Participants  []ParticipantDef `yaml:"participants"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

// Load reads and validates a scenario file.
func Load(path string) (*ArenaConfig, error) {
	var ac ArenaConfig
	if err := loadYAML(path, &ac); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := ac.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &ac, nil
}

// Validate checks the shape of the scenario. The per-participant attribute
// budget is left to the arena, which owns that rule.
func (ac *ArenaConfig) Validate() error {
	if ac.Room.Width <= 0 || ac.Room.Height <= 0 {
		return fmt.Errorf("%w: room size %dx%d", ErrInvalid, ac.Room.Width, ac.Room.Height)
	}
	if ac.Room.Hazards < 0 || ac.Room.Weapons < 0 {
		return fmt.Errorf("%w: negative hazards or weapons", ErrInvalid)
	}
	if ac.Ticks < 0 || ac.AllianceEvery < 0 {
		return fmt.Errorf("%w: negative ticks or alliance_every", ErrInvalid)
	}
	if len(ac.Participants) == 0 {
		return fmt.Errorf("%w: no participants", ErrInvalid)
	}
	seen := map[string]bool{}
	for i, pd := range ac.Participants {
		if pd.Name == "" {
			return fmt.Errorf("%w: participant %d has no name", ErrInvalid, i)
		}
		if seen[pd.Name] {
			return fmt.Errorf("%w: duplicate participant %q", ErrInvalid, pd.Name)
		}
		seen[pd.Name] = true
		if !finite(pd.Height) {
			return fmt.Errorf("%w: participant %q has height %v", ErrInvalid, pd.Name, pd.Height)
		}
		for _, v := range []float64{pd.Speed, pd.Strength, pd.Intelligence, pd.Creativity} {
			if !finite(v) || v < 0 {
				return fmt.Errorf("%w: participant %q has a negative or non-finite attribute", ErrInvalid, pd.Name)
			}
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
