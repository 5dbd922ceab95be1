package collision

import (
	"testing"

	"github.com/younwookim/pirate/internal/domain/entity"
)

func BenchmarkWorld_CastBox(b *testing.B) {
	world := NewStageWorld(createTestStage())
	box := entity.Rect{X: 16, Y: 80 - 22 - 0.3, W: 12, H: 22}

	for n := 0; n < b.N; n++ {
		if _, err := world.CastBox(box, entity.CastDown, 0.5, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkWorld_Integrate(b *testing.B) {
	world := NewStageWorld(createTestStage())
	body := world.AddBody(entity.Vec2{X: 16, Y: 40}, testCollider)

	for n := 0; n < b.N; n++ {
		if n%120 == 0 {
			body.Teleport(entity.Vec2{X: 16, Y: 40})
		}
		body.SetVelocity(entity.Vec2{X: 60, Y: 200})
		world.Integrate(body, 1.0/60.0)
	}
}
