package arena

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tributes(t *testing.T, wits ...float64) []*Participant {
	t.Helper()
	r := newTestRoom(t, 1, 10, 10, 0, 0)
	ps := make([]*Participant, len(wits))
	for i, w := range wits {
		ps[i] = newTestParticipant(t, r, int64(i+1), fmt.Sprintf("p%d", i), 58,
			Attributes{Intelligence: w / 2, Creativity: w / 2})
	}
	return ps
}

func TestCheckTeams_deterministic(t *testing.T) {
	for _, tc := range []struct {
		name       string
		wits       []float64
		allied     bool
		pair       [2]int
		standalone int
	}{
		{"last two qualify", []float64{2, 6, 7}, true, [2]int{1, 2}, 0},
		{"outer two qualify", []float64{6, 2, 6}, true, [2]int{0, 2}, 1},
		{"nobody qualifies", []float64{3, 3, 3}, false, [2]int{}, 0},
		{"everybody qualifies", []float64{6, 6, 6}, false, [2]int{}, 0},
		{"only one qualifies", []float64{9, 1, 1}, false, [2]int{}, 0},
		{"threshold is inclusive", []float64{4.9, 5, 5}, true, [2]int{1, 2}, 0},
		{"extra members ignored", []float64{2, 6, 7, 9}, true, [2]int{1, 2}, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ps := tributes(t, tc.wits...)
			rng := rand.New(rand.NewSource(1))
			for trial := 0; trial < 100; trial++ {
				g := CheckTeams(rng, ps)
				require.Equal(t, tc.allied, g.Allied)
				if !tc.allied {
					assert.Equal(t, ps, g.Flat)
					assert.Equal(t, ps, g.Members())
					continue
				}
				assert.Same(t, ps[tc.pair[0]], g.Pair[0])
				assert.Same(t, ps[tc.pair[1]], g.Pair[1])
				assert.Same(t, ps[tc.standalone], g.Standalone)
				assert.Len(t, g.Members(), 3)
			}
		})
	}
}

func TestCheckTeams_firstPairIsProbabilistic(t *testing.T) {
	ps := tributes(t, 6, 6, 2)
	rng := rand.New(rand.NewSource(2024))
	const trials = 10000
	formed := 0
	for i := 0; i < trials; i++ {
		g := CheckTeams(rng, ps)
		if !g.Allied {
			assert.Equal(t, ps, g.Flat)
			continue
		}
		formed++
		assert.Same(t, ps[0], g.Pair[0])
		assert.Same(t, ps[1], g.Pair[1])
		assert.Same(t, ps[2], g.Standalone)
	}
	assert.InDelta(t, AllianceChance, float64(formed)/trials, 0.03)
}

func TestCheckTeams_shortLists(t *testing.T) {
	for n := 0; n <= 2; n++ {
		ps := tributes(t, []float64{6, 6}[:n]...)
		rng := rand.New(rand.NewSource(3))
		g := CheckTeams(rng, ps)
		assert.False(t, g.Allied)
		assert.Equal(t, ps, g.Flat)
		assert.Equal(t, rand.New(rand.NewSource(3)).Int63(), rng.Int63(), "no draw for %d participants", n)
	}
}

func TestCheckTeams_drawsOnlyForFirstRule(t *testing.T) {
	ps := tributes(t, 2, 6, 7)
	rng := rand.New(rand.NewSource(4))
	CheckTeams(rng, ps)
	assert.Equal(t, rand.New(rand.NewSource(4)).Int63(), rng.Int63())
}

func TestEncounter_reports(t *testing.T) {
	var events []Event
	emit := func(ev Event) { events = append(events, ev) }
	rng := rand.New(rand.NewSource(5))

	g := Encounter(rng, tributes(t, 2, 6, 7), 12, emit)
	require.True(t, g.Allied)
	require.Len(t, events, 1)
	assert.Equal(t, EventAlliance, events[0].Type)
	assert.Equal(t, 12, events[0].T)
	assert.Equal(t, []string{"p1", "p2"}, events[0].Payload["pair"])
	assert.Equal(t, "p0", events[0].Payload["standalone"])

	events = nil
	g = Encounter(rng, tributes(t, 3, 3, 3), 13, emit)
	require.False(t, g.Allied)
	require.Len(t, events, 1)
	assert.Equal(t, EventNoAlliance, events[0].Type)

	events = nil
	Encounter(rng, tributes(t, 9, 9), 14, emit)
	assert.Empty(t, events)
}
