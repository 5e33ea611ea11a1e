package shooter

import (
	"fmt"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// Entity is an axis-aligned rectangular object in the arena: a bullet,
// an enemy, a powerup or the player's ship. Pos is the center.
type Entity struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Half  core.Vec2 // Half extents, both strictly positive
	Alive bool
}

// NewEntity creates a live entity centered at pos with the given full size.
// Panics if either dimension is not positive.
func NewEntity(pos, vel core.Vec2, w, h float64) Entity {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("shooter: entity size must be positive, got %vx%v", w, h))
	}
	return Entity{
		Pos:   pos,
		Vel:   vel,
		Half:  core.V(w/2, h/2),
		Alive: true,
	}
}

// Bounds returns the bounding box Pos ± Half.
func (e Entity) Bounds() core.RectF {
	return core.RectF{
		X: e.Pos.X - e.Half.X,
		Y: e.Pos.Y - e.Half.Y,
		W: 2 * e.Half.X,
		H: 2 * e.Half.Y,
	}
}

// Overlaps reports whether the two bounding boxes intersect.
// Touching edges do not count.
func (e Entity) Overlaps(other Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}

// Integrate advances the position by velocity over dt seconds.
func (e *Entity) Integrate(dt float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
}

// compact removes dead entities in place, keeping survivors in order.
func compact(list []Entity) []Entity {
	n := 0
	for _, e := range list {
		if e.Alive {
			list[n] = e
			n++
		}
	}
	clear(list[n:])
	return list[:n]
}
