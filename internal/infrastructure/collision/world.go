// Package collision provides the resolv-backed physics world: box casts for
// ground and ceiling probing, and the rigid-body integrator that applies
// controller velocity with axis-separated collision resolution.
package collision

import (
	"errors"
	"fmt"
	"math"

	"github.com/solarlune/resolv"
	"github.com/younwookim/pirate/internal/domain/entity"
)

// Collision tags
const (
	TagSolid  = "solid"
	TagPlayer = "player"
	tagProbe  = "probe"
)

const (
	// contactEpsilon absorbs float error when snapping bodies onto surfaces
	contactEpsilon = 1e-6
	// broadphasePad widens broadphase regions; resolv maps bounds to cells with a -1 on the far edge
	broadphasePad = 1.0
)

// ErrDegenerateShape is returned for query shapes with no area or non-finite values
var ErrDegenerateShape = errors.New("degenerate query shape")

// World is a resolv space holding static solids and dynamic bodies
type World struct {
	space    *resolv.Space
	probe    *resolv.Object
	cellSize int

	queriesStartInColliders bool
}

// NewWorld creates an empty world of width x height pixels
func NewWorld(width, height, cellSize int) *World {
	if cellSize <= 0 {
		cellSize = 16
	}
	space := resolv.NewSpace(width, height, cellSize, cellSize)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)
	return &World{
		space:                   space,
		probe:                   probe,
		cellSize:                cellSize,
		queriesStartInColliders: true,
	}
}

// NewStageWorld creates a world with a solid object for every run of solid tiles
func NewStageWorld(stage *entity.Stage) *World {
	w, h := stage.PixelSize()
	world := NewWorld(w, h, stage.TileSize)
	for _, r := range stage.SolidRects() {
		world.AddSolid(r)
	}
	return world
}

// AddSolid adds a static solid; extra tags are added next to TagSolid
func (w *World) AddSolid(r entity.Rect, tags ...string) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, append([]string{TagSolid}, tags...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	w.space.Add(obj)
	return obj
}

// QueriesStartInColliders reports whether casts detect colliders the box starts inside
func (w *World) QueriesStartInColliders() bool {
	return w.queriesStartInColliders
}

// SetQueriesStartInColliders changes whether casts detect colliders the box starts inside
func (w *World) SetQueriesStartInColliders(v bool) {
	w.queriesStartInColliders = v
}

// CastBox sweeps box up or down by distance and returns the nearest contact.
// Objects carrying any of the exclude tags are ignored.
func (w *World) CastBox(box entity.Rect, dir entity.CastDirection, distance float64, exclude []string) (entity.Hit, error) {
	if box.Degenerate() || math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		return entity.Hit{}, fmt.Errorf("cast %s %+v by %v: %w", dir, box, distance, ErrDegenerateShape)
	}

	var swept entity.Rect
	switch dir {
	case entity.CastDown:
		swept = entity.Rect{X: box.X, Y: box.Y, W: box.W, H: box.H + distance}
	case entity.CastUp:
		swept = entity.Rect{X: box.X, Y: box.Y - distance, W: box.W, H: box.H + distance}
	default:
		return entity.Hit{}, fmt.Errorf("cast direction %d: %w", dir, ErrDegenerateShape)
	}

	best := entity.Hit{Distance: math.Inf(1)}
	for _, obj := range w.candidates(swept) {
		if hasAnyTag(obj, exclude) {
			continue
		}
		other := rectOf(obj)
		if overlapLen(box.X, box.X+box.W, other.X, other.X+other.W) <= contactEpsilon {
			continue
		}

		var gap float64
		if dir == entity.CastDown {
			gap = other.Y - (box.Y + box.H)
		} else {
			gap = box.Y - (other.Y + other.H)
		}

		if gap < -contactEpsilon {
			if overlapLen(box.Y, box.Y+box.H, other.Y, other.Y+other.H) <= contactEpsilon {
				continue // behind the cast
			}
			if !w.queriesStartInColliders {
				continue
			}
			gap = 0
		}
		gap = math.Max(gap, 0)
		if gap <= distance && gap < best.Distance {
			best.Hit = true
			best.Distance = gap
		}
	}

	if !best.Hit {
		return entity.Hit{}, nil
	}
	cx := box.X + box.W/2
	if dir == entity.CastDown {
		best.Point = entity.Vec2{X: cx, Y: box.Y + box.H + best.Distance}
	} else {
		best.Point = entity.Vec2{X: cx, Y: box.Y - best.Distance}
	}
	return best, nil
}

// candidates returns resolv objects in the cells overlapping region (padded)
func (w *World) candidates(region entity.Rect, tags ...string) []*resolv.Object {
	w.probe.X = region.X - broadphasePad
	w.probe.Y = region.Y - broadphasePad
	w.probe.W = region.W + 2*broadphasePad
	w.probe.H = region.H + 2*broadphasePad
	w.probe.Update()

	check := w.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	return check.Objects
}

func rectOf(obj *resolv.Object) entity.Rect {
	return entity.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func hasAnyTag(obj *resolv.Object, tags []string) bool {
	for _, t := range tags {
		if obj.HasTags(t) {
			return true
		}
	}
	return false
}

func overlapLen(aMin, aMax, bMin, bMax float64) float64 {
	return math.Min(aMax, bMax) - math.Max(aMin, bMin)
}
