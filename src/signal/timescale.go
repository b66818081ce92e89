package signal

import (
	"math"
	"sync/atomic"
)

const (
	MaxExponent = 10
	MinExponent = -10
)

//TimeScale is the simulation speed factor 2^exponent
//the exponent is clamped to MinExponent..MaxExponent
type TimeScale struct {
	exponent atomic.Int32
}

func (s *TimeScale) Exponent() int {
	return int(s.exponent.Load())
}

//Scale returns 2^exponent
func (s *TimeScale) Scale() float64 {
	return math.Ldexp(1, s.Exponent())
}

//Increment raises the exponent by one, no-op at MaxExponent
func (s *TimeScale) Increment() {
	s.add(1)
}

//Decrement lowers the exponent by one, no-op at MinExponent
func (s *TimeScale) Decrement() {
	s.add(-1)
}

func (s *TimeScale) add(d int32) {
	for {
		old := s.exponent.Load()
		next := old + d
		if next > MaxExponent || next < MinExponent {
			return
		}
		if s.exponent.CompareAndSwap(old, next) {
			return
		}
	}
}
