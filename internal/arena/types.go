package arena

import "math/rand"

const (
	EventSpawn      = "Spawn"
	EventMove       = "Move"
	EventTurn       = "Turn"
	EventAlliance   = "Alliance"
	EventNoAlliance = "NoAlliance"
	EventEnd        = "End"
)

type Event struct {
	T       int            `json:"t"`
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Env carries the clock and random source shared by one simulation run.
type Env struct {
	Time int
	Rng  *rand.Rand
}
