package runtime

import (
	_ "unsafe" // for go:linkname
)

// Uint32 returns a fast random uint32 value.
//
//go:linkname Uint32 runtime.fastrand
func Uint32() uint32

// Uint32n returns a fast random uint32 value in [0, n).
//
//go:linkname Uint32n runtime.fastrandn
func Uint32n(n uint32) uint32

// Intn returns a fast random int in [0, n). It returns 0 when n <= 0.
func Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(Uint32n(uint32(n)))
}

// FastPicker adapts the runtime random source to index pickers that take an int bound.
type FastPicker struct{}

// Intn returns a fast random int in [0, n).
func (FastPicker) Intn(n int) int { return Intn(n) }
