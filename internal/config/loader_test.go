package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleScenario = `
seed: 7
ticks: 50
alliance_every: 10
room: {width: 8, height: 6, hazards: 3, weapons: 2}
participants:
  - {name: Katniss, height: 66, speed: 2, strength: 1.5, intelligence: 2.5, creativity: 3}
  - {name: Rue, height: 55, speed: 3, strength: 1, intelligence: 3, creativity: 3, note: small}
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arena.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func validConfig() ArenaConfig {
	return ArenaConfig{
		Ticks: 10,
		Room:  RoomDef{Width: 5, Height: 5},
		Participants: []ParticipantDef{
			{Name: "a", Height: 58, Speed: 1},
			{Name: "b", Height: 58, Speed: 1},
		},
	}
}

func TestLoad(t *testing.T) {
	ac, err := Load(writeScenario(t, sampleScenario))
	require.NoError(t, err)
	assert.Equal(t, int64(7), ac.Seed)
	assert.Equal(t, 50, ac.Ticks)
	assert.Equal(t, 10, ac.AllianceEvery)
	assert.Equal(t, RoomDef{Width: 8, Height: 6, Hazards: 3, Weapons: 2}, ac.Room)
	require.Len(t, ac.Participants, 2)
	assert.Equal(t, ParticipantDef{
		Name: "Rue", Height: 55, Speed: 3, Strength: 1, Intelligence: 3, Creativity: 3, Note: "small",
	}, ac.Participants[1])
}

func TestLoad_bundledScenario(t *testing.T) {
	ac, err := Load(filepath.Join("..", "..", "assets", "arena.yaml"))
	require.NoError(t, err)
	assert.NotEmpty(t, ac.Participants)
}

func TestLoad_errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeScenario(t, "room: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeScenario(t, "room: {width: 0, height: 3}\nparticipants: [{name: a}]"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeScenario(t, "room: {width: 3, height: 3}\nparticipants: [{name: a, height: 58, speed: .nan}]"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestArenaConfig_Validate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*ArenaConfig)
	}{
		{"zero width", func(ac *ArenaConfig) { ac.Room.Width = 0 }},
		{"negative height", func(ac *ArenaConfig) { ac.Room.Height = -2 }},
		{"negative hazards", func(ac *ArenaConfig) { ac.Room.Hazards = -1 }},
		{"negative weapons", func(ac *ArenaConfig) { ac.Room.Weapons = -1 }},
		{"negative ticks", func(ac *ArenaConfig) { ac.Ticks = -1 }},
		{"negative alliance interval", func(ac *ArenaConfig) { ac.AllianceEvery = -5 }},
		{"no participants", func(ac *ArenaConfig) { ac.Participants = nil }},
		{"unnamed participant", func(ac *ArenaConfig) { ac.Participants[1].Name = "" }},
		{"duplicate name", func(ac *ArenaConfig) { ac.Participants[1].Name = "a" }},
		{"negative attribute", func(ac *ArenaConfig) { ac.Participants[0].Creativity = -0.1 }},
		{"NaN attribute", func(ac *ArenaConfig) { ac.Participants[0].Speed = math.NaN() }},
		{"infinite attribute", func(ac *ArenaConfig) { ac.Participants[1].Intelligence = math.Inf(1) }},
		{"NaN height", func(ac *ArenaConfig) { ac.Participants[0].Height = math.NaN() }},
		{"infinite height", func(ac *ArenaConfig) { ac.Participants[1].Height = math.Inf(-1) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ac := validConfig()
			tc.mutate(&ac)
			assert.ErrorIs(t, ac.Validate(), ErrInvalid)
		})
	}

	ac := validConfig()
	assert.NoError(t, ac.Validate())
}
