package arena

import "math/rand"

const (
	// WitsThreshold is the intelligence+creativity score a participant needs
	// to be considered for an alliance.
	WitsThreshold = 5.0

	// AllianceChance is the probability that the first two participants ally
	// when both qualify and the third does not.
	AllianceChance = 0.3
)

// Grouping is the outcome of an alliance check: either the unchanged flat
// list, or a pair of allies plus the one participant left out.
type Grouping struct {
	Flat []*Participant

	Allied     bool
	Pair       [2]*Participant
	Standalone *Participant
}

// Members lists the participants in the grouping, allies first.
func (g Grouping) Members() []*Participant {
	if !g.Allied {
		return g.Flat
	}
	return []*Participant{g.Pair[0], g.Pair[1], g.Standalone}
}

func flat(ps []*Participant) Grouping { return Grouping{Flat: ps} }

func allied(a, b, standalone *Participant) Grouping {
	return Grouping{Allied: true, Pair: [2]*Participant{a, b}, Standalone: standalone}
}

// CheckTeams decides whether two of the first three participants form an
// alliance. Fewer than three participants never ally; participants past the
// third are not considered and are not part of an allied grouping.
//
// The first matching rule wins:
//   - 0 and 1 qualify, 2 does not: 0 and 1 ally with probability AllianceChance.
//   - 1 and 2 qualify, 0 does not: 1 and 2 ally.
//   - 0 and 2 qualify, 1 does not: 0 and 2 ally.
//
// Anything else leaves the list unchanged.
func CheckTeams(rng *rand.Rand, ps []*Participant) Grouping {
	if len(ps) < 3 {
		return flat(ps)
	}
	q0 := ps[0].Wits() >= WitsThreshold
	q1 := ps[1].Wits() >= WitsThreshold
	q2 := ps[2].Wits() >= WitsThreshold

	switch {
	case q0 && q1 && !q2:
		if rng.Float64() < AllianceChance {
			return allied(ps[0], ps[1], ps[2])
		}
	case q1 && q2 && !q0:
		return allied(ps[1], ps[2], ps[0])
	case q0 && q2 && !q1:
		return allied(ps[0], ps[2], ps[1])
	}
	return flat(ps)
}

// Encounter runs CheckTeams and reports the outcome through emit.
func Encounter(rng *rand.Rand, ps []*Participant, t int, emit func(Event)) Grouping {
	g := CheckTeams(rng, ps)
	if len(ps) < 3 {
		return g
	}
	if g.Allied {
		emit(Event{T: t, Type: EventAlliance, Payload: map[string]any{
			"pair":       []string{g.Pair[0].Name(), g.Pair[1].Name()},
			"standalone": g.Standalone.Name(),
		}})
		return g
	}
	emit(Event{T: t, Type: EventNoAlliance, Payload: map[string]any{
		"considered": []string{ps[0].Name(), ps[1].Name(), ps[2].Name()},
	}})
	return g
}
