package status

import (
	"math"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored labels in bytes, wide enough for a session uuid
const MaxStringLen = 40

// AtomicFloat holds a float64 as raw bits
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) { f.bits.Store(math.Float64bits(val)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// AtomicString is a label cell, the zero value reads empty
type AtomicString struct {
	v atomic.Value
}

// Store keeps at most MaxStringLen bytes, cut on a rune boundary
func (s *AtomicString) Store(val string) {
	if len(val) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(val[cut]) {
			cut--
		}
		val = val[:cut]
	}
	s.v.Store(val)
}

func (s *AtomicString) Load() string {
	val, _ := s.v.Load().(string)
	return val
}
