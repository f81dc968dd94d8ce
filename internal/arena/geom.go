package arena

import (
	"fmt"
	"math"
)

// Position is a point in the room. Coordinates are continuous; the tile under
// a position is (floor(X), floor(Y)).
type Position struct{ X, Y float64 }

// Pos is a convenience constructor for Position.
func Pos(x, y float64) Position { return Position{X: x, Y: y} }

// Step returns the position reached after moving speed units along angle.
// Angles are compass degrees: 0 points along +Y and 90 along +X. Room bounds
// are not checked.
func (p Position) Step(angle, speed float64) Position {
	rad := angle * math.Pi / 180
	return Position{
		X: p.X + speed*math.Sin(rad),
		Y: p.Y + speed*math.Cos(rad),
	}
}

// Tile returns the grid cell under p.
func (p Position) Tile() (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}

func (p Position) String() string {
	i, j := p.Tile()
	return fmt.Sprintf("Position: %d, %d", i, j)
}
