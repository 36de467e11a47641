package edgeswitch

import "testing"

func BenchmarkSetToggle(b *testing.B) {
	var s Switch
	for i := 0; i < b.N; i++ {
		s.Set(i&1 == 0)
	}
}

func BenchmarkSetSameState(b *testing.B) {
	var s Switch
	s.SetOn()
	for i := 0; i < b.N; i++ {
		s.SetOn()
	}
}

func BenchmarkPollCycle(b *testing.B) {
	var s Switch
	for i := 0; i < b.N; i++ {
		s.Set(i&1 == 0)
		_ = s.ConsumeTurnedOn()
		_ = s.ConsumeTurnedOff()
	}
}
