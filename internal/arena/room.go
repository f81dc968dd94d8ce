package arena

import (
	"fmt"
	"math/rand"
)

// TileState is what a tile holds. Seeding places Hazard and Weapon tiles;
// participants reset tiles to Clean as they cross them.
type TileState int

const (
	Clean TileState = iota
	Hazard
	Weapon
)

func (s TileState) String() string {
	switch s {
	case Clean:
		return "clean"
	case Hazard:
		return "hazard"
	case Weapon:
		return "weapon"
	}
	return fmt.Sprintf("TileState(%d)", int(s))
}

// Room is a width x height grid of tiles. Tile (i, j) covers the half-open
// square [i, i+1) x [j, j+1). A Room is not safe for concurrent use; a driver
// that ticks participants in parallel must serialize MarkClean.
type Room struct {
	width, height int
	tiles         []TileState
}

// NewRoom builds a clean room and seeds it with hazard and weapon tiles.
// Each seed draw picks a coordinate from the closed range [0,width] x
// [0,height] and overwrites whatever is there, so draws may collide and a
// weapon can replace a hazard. Draws landing one past the grid are dropped.
func NewRoom(rng *rand.Rand, width, height, hazards, weapons int) (*Room, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: room size %dx%d", ErrInvalidConfig, width, height)
	}
	if hazards < 0 || weapons < 0 {
		return nil, fmt.Errorf("%w: negative seed count (hazards=%d weapons=%d)", ErrInvalidConfig, hazards, weapons)
	}
	r := &Room{
		width:  width,
		height: height,
		tiles:  make([]TileState, width*height),
	}
	r.seed(rng, hazards, Hazard)
	r.seed(rng, weapons, Weapon)
	return r, nil
}

func (r *Room) seed(rng *rand.Rand, n int, state TileState) {
	for k := 0; k < n; k++ {
		i := rng.Intn(r.width + 1)
		j := rng.Intn(r.height + 1)
		if r.inGrid(i, j) {
			r.tiles[r.index(i, j)] = state
		}
	}
}

// Width and Height are the room size in tiles; NumTiles is their product.
func (r *Room) Width() int    { return r.width }
func (r *Room) Height() int   { return r.height }
func (r *Room) NumTiles() int { return r.width * r.height }

func (r *Room) inGrid(i, j int) bool { return i >= 0 && i < r.width && j >= 0 && j < r.height }
func (r *Room) index(i, j int) int   { return j*r.width + i }

// Tile returns the state of tile (i, j).
func (r *Room) Tile(i, j int) (TileState, error) {
	if !r.inGrid(i, j) {
		return Clean, fmt.Errorf("%w: (%d, %d) in %dx%d room", ErrTileOutOfBounds, i, j, r.width, r.height)
	}
	return r.tiles[r.index(i, j)], nil
}

// IsHazard reports whether tile (i, j) is a hazard. Weapon tiles are not.
func (r *Room) IsHazard(i, j int) (bool, error) {
	s, err := r.Tile(i, j)
	if err != nil {
		return false, err
	}
	return s == Hazard, nil
}

// IsTileClean reports whether tile (i, j) holds neither a hazard nor a weapon.
func (r *Room) IsTileClean(i, j int) (bool, error) {
	s, err := r.Tile(i, j)
	if err != nil {
		return false, err
	}
	return s == Clean, nil
}

// MarkClean sets the tile under p to Clean, clearing any hazard or weapon
// there.
func (r *Room) MarkClean(p Position) error {
	i, j := p.Tile()
	if !r.inGrid(i, j) {
		return fmt.Errorf("%w: clean at %v in %dx%d room", ErrTileOutOfBounds, p, r.width, r.height)
	}
	r.tiles[r.index(i, j)] = Clean
	return nil
}

// Contains reports whether p lies inside the room: 0 <= X < width and
// 0 <= Y < height.
func (r *Room) Contains(p Position) bool {
	return p.X >= 0 && p.X < float64(r.width) && p.Y >= 0 && p.Y < float64(r.height)
}

// RandomPosition returns the corner of a uniformly chosen tile. The tile's
// state is not considered.
func (r *Room) RandomPosition(rng *rand.Rand) Position {
	return Position{
		X: float64(rng.Intn(r.width)),
		Y: float64(rng.Intn(r.height)),
	}
}

func (r *Room) count(state TileState) int {
	n := 0
	for _, s := range r.tiles {
		if s == state {
			n++
		}
	}
	return n
}

// NumCleanTiles, NumHazardTiles and NumWeaponTiles count tiles by state.
func (r *Room) NumCleanTiles() int  { return r.count(Clean) }
func (r *Room) NumHazardTiles() int { return r.count(Hazard) }
func (r *Room) NumWeaponTiles() int { return r.count(Weapon) }

// CleanRatio is the fraction of tiles currently clean.
func (r *Room) CleanRatio() float64 {
	return float64(r.NumCleanTiles()) / float64(r.NumTiles())
}
