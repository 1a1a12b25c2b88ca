package gizmo

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DueForCorrection reports whether this frame crossed a whole-second
// boundary of elapsed time.
func DueForCorrection(elapsed, delta float64) bool {
	return math.Mod(elapsed, 1.0) < delta
}

// CorrectDrift renormalizes every orientation on the frame that straddles a
// second boundary. Returns true when it ran.
func CorrectDrift(s *Store, elapsed, delta float64) bool {
	if !DueForCorrection(elapsed, delta) {
		return false
	}
	Normalize(s)
	return true
}

// Normalize scales every orientation back to unit length.
func Normalize(s *Store) {
	for _, g := range s.Gizmos() {
		g.Rotation = rl.QuaternionNormalize(g.Rotation)
	}
}
