package entity

import "testing"

func BenchmarkLeakField_Repair(b *testing.B) {
	f := createTestLeakField(16)
	for f.Spawn() != NoLeak {
	}
	repairers := []Vec2{{X: 100, Y: 100}, {X: 20, Y: 100}}

	for n := 0; n < b.N; n++ {
		f.Repair(repairers, n%8 != 7, 0.01)
	}
}
