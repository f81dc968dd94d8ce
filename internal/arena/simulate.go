package arena

import (
	"encoding/json"
	"fmt"

	"hungergames/internal/config"
)

type SimOptions struct {
	Ticks         int
	AllianceEvery int
}

type TileCounts struct {
	Clean  int `json:"clean"`
	Hazard int `json:"hazard"`
	Weapon int `json:"weapon"`
}

type AllianceRecord struct {
	T          int       `json:"t"`
	Pair       [2]string `json:"pair"`
	Standalone string    `json:"standalone"`
}

type SimResult struct {
	Ticks      int              `json:"ticks"`
	CleanRatio float64          `json:"clean_ratio"`
	Start      TileCounts       `json:"start"`
	End        TileCounts       `json:"end"`
	Moves      map[string]int   `json:"moves"`
	Turns      map[string]int   `json:"turns"`
	Alliances  []AllianceRecord `json:"alliances,omitempty"`
	Events     []Event          `json:"events,omitempty"`
	Meta       SimMeta          `json:"meta"`
}

type SimMeta struct {
	Room         SimRoomMeta          `json:"room"`
	Participants []SimParticipantMeta `json:"participants"`
}

type SimRoomMeta struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Hazards int `json:"hazards"`
	Weapons int `json:"weapons"`
}

type SimParticipantMeta struct {
	Name         string  `json:"name"`
	HeightBonus  float64 `json:"height_bonus"`
	Speed        float64 `json:"speed"`
	Strength     float64 `json:"strength"`
	Intelligence float64 `json:"intelligence"`
	Creativity   float64 `json:"creativity"`
	Note         string  `json:"note,omitempty"`
}

// Arena is a room and the participants placed in it, in configured order.
type Arena struct {
	Room         *Room
	Participants []*Participant

	meta SimMeta
}

// NewArena builds the room then each participant from the scenario, all drawing
// from env.Rng.
func NewArena(env *Env, rd config.RoomDef, defs []config.ParticipantDef) (*Arena, error) {
	room, err := NewRoom(env.Rng, rd.Width, rd.Height, rd.Hazards, rd.Weapons)
	if err != nil {
		return nil, err
	}
	a := &Arena{
		Room: room,
		meta: SimMeta{Room: SimRoomMeta{
			Width: rd.Width, Height: rd.Height, Hazards: rd.Hazards, Weapons: rd.Weapons,
		}},
	}
	for _, d := range defs {
		p, err := NewParticipant(room, env.Rng, d.Name, d.Height, Attributes{
			Speed:        d.Speed,
			Strength:     d.Strength,
			Intelligence: d.Intelligence,
			Creativity:   d.Creativity,
		})
		if err != nil {
			return nil, err
		}
		a.Participants = append(a.Participants, p)
		a.meta.Participants = append(a.meta.Participants, SimParticipantMeta{
			Name:         p.Name(),
			HeightBonus:  p.HeightBonus(),
			Speed:        p.Speed(),
			Strength:     p.Strength(),
			Intelligence: p.Intelligence(),
			Creativity:   p.Creativity(),
			Note:         d.Note,
		})
	}
	return a, nil
}

func (a *Arena) tileCounts() TileCounts {
	return TileCounts{
		Clean:  a.Room.NumCleanTiles(),
		Hazard: a.Room.NumHazardTiles(),
		Weapon: a.Room.NumWeaponTiles(),
	}
}

// RunSingle ticks every participant opts.Ticks times. Every opts.AllianceEvery
// ticks the current participants are checked for an alliance; zero disables
// the check. Events are kept in the result only when record is set.
func RunSingle(env *Env, a *Arena, opts SimOptions, record bool) SimResult {
	var events []Event
	emit := func(ev Event) {
		if record {
			events = append(events, ev)
		}
	}

	res := SimResult{
		Start: a.tileCounts(),
		Moves: map[string]int{},
		Turns: map[string]int{},
		Meta:  a.meta,
	}

	for _, p := range a.Participants {
		pos := p.Position()
		emit(Event{T: env.Time, Type: EventSpawn, Payload: map[string]any{
			"id": p.Name(), "x": pos.X, "y": pos.Y, "dir": p.Direction(),
		}})
	}

	for ; env.Time < opts.Ticks; env.Time++ {
		for _, p := range a.Participants {
			from, dir := p.Position(), p.Direction()
			p.Tick()
			to := p.Position()
			if to != from {
				res.Moves[p.Name()]++
				emit(Event{T: env.Time, Type: EventMove, Payload: map[string]any{
					"id": p.Name(), "from": []float64{from.X, from.Y}, "to": []float64{to.X, to.Y},
				}})
				continue
			}
			if p.Direction() != dir {
				res.Turns[p.Name()]++
				emit(Event{T: env.Time, Type: EventTurn, Payload: map[string]any{
					"id": p.Name(), "from": dir, "to": p.Direction(),
				}})
			}
		}

		if opts.AllianceEvery > 0 && (env.Time+1)%opts.AllianceEvery == 0 {
			snapshot := append([]*Participant(nil), a.Participants...)
			g := Encounter(env.Rng, snapshot, env.Time, emit)
			if g.Allied {
				res.Alliances = append(res.Alliances, AllianceRecord{
					T:          env.Time,
					Pair:       [2]string{g.Pair[0].Name(), g.Pair[1].Name()},
					Standalone: g.Standalone.Name(),
				})
			}
		}
	}

	res.Ticks = env.Time
	res.End = a.tileCounts()
	res.CleanRatio = a.Room.CleanRatio()
	emit(Event{T: env.Time, Type: EventEnd, Payload: map[string]any{
		"clean_ratio": res.CleanRatio,
		"summary":     fmt.Sprintf("%d/%d tiles clean", res.End.Clean, a.Room.NumTiles()),
	}})
	if record {
		res.Events = events
	}
	return res
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
