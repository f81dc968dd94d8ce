package arena

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// AttributeBudget caps height bonus plus the four attributes.
	AttributeBudget = 10.0

	baseHeight      = 58.0
	heightBonusRate = 0.1
	budgetEpsilon   = 1e-9
)

type Attributes struct {
	Speed        float64
	Strength     float64
	Intelligence float64
	Creativity   float64
}

func validStat(v float64) bool { return v >= 0 && !math.IsInf(v, 1) }

// valid is false for negative, NaN or infinite attributes.
func (a Attributes) valid() bool {
	return validStat(a.Speed) && validStat(a.Strength) && validStat(a.Intelligence) && validStat(a.Creativity)
}

func (a Attributes) Sum() float64 {
	return a.Speed + a.Strength + a.Intelligence + a.Creativity
}

// HeightBonus converts a height in inches to attribute points: 0.1 per inch
// above 58.
func HeightBonus(inches float64) float64 {
	return (inches - baseHeight) * heightBonusRate
}

// Participant wanders the room, cleaning every tile it steps onto.
type Participant struct {
	room *Room
	rng  *rand.Rand

	name        string
	heightBonus float64
	attrs       Attributes
	health      float64

	pos Position
	dir float64
}

// NewParticipant places a participant at a random tile of room facing a random
// direction. rng is kept for direction changes during Tick.
func NewParticipant(room *Room, rng *rand.Rand, name string, heightInches float64, attrs Attributes) (*Participant, error) {
	if !attrs.valid() {
		return nil, fmt.Errorf("%w: participant %q has a negative or non-finite attribute %+v", ErrInvalidConfig, name, attrs)
	}
	if math.IsNaN(heightInches) || math.IsInf(heightInches, 0) {
		return nil, fmt.Errorf("%w: participant %q has height %v", ErrInvalidConfig, name, heightInches)
	}
	bonus := HeightBonus(heightInches)
	if total := bonus + attrs.Sum(); !(total <= AttributeBudget+budgetEpsilon) {
		return nil, fmt.Errorf("%w: participant %q stats total %.2f, must be <= %.0f", ErrInvalidConfig, name, total, AttributeBudget)
	}
	p := &Participant{
		room:        room,
		rng:         rng,
		name:        name,
		heightBonus: bonus,
		attrs:       attrs,
		health:      1.0,
	}
	p.pos = room.RandomPosition(rng)
	p.dir = randomDirection(rng)
	return p, nil
}

func randomDirection(rng *rand.Rand) float64 { return rng.Float64() * 360 }

func (p *Participant) Name() string           { return p.name }
func (p *Participant) HeightBonus() float64   { return p.heightBonus }
func (p *Participant) Speed() float64         { return p.attrs.Speed }
func (p *Participant) Strength() float64      { return p.attrs.Strength }
func (p *Participant) Intelligence() float64  { return p.attrs.Intelligence }
func (p *Participant) Creativity() float64    { return p.attrs.Creativity }
func (p *Participant) Attributes() Attributes { return p.attrs }
func (p *Participant) Health() float64        { return p.health }
func (p *Participant) Position() Position     { return p.pos }
func (p *Participant) Direction() float64     { return p.dir }

func (p *Participant) SetPosition(pos Position) { p.pos = pos }
func (p *Participant) SetDirection(dir float64) { p.dir = dir }

// Wits is intelligence plus creativity, the score alliances are judged on.
func (p *Participant) Wits() float64 { return p.attrs.Intelligence + p.attrs.Creativity }

// Tick advances the participant one step along its direction and cleans the
// tile it lands on. A step that would leave the room is not taken; the
// participant turns to a new random direction instead.
func (p *Participant) Tick() {
	next := p.pos.Step(p.dir, p.attrs.Speed)
	if !p.room.Contains(next) {
		p.dir = randomDirection(p.rng)
		return
	}
	p.pos = next
	if err := p.room.MarkClean(next); err != nil {
		panic(fmt.Sprintf("participant %q: %v", p.name, err))
	}
}

func (p *Participant) String() string {
	return fmt.Sprintf("%s (%v, heading %.1f)", p.name, p.pos, p.dir)
}
