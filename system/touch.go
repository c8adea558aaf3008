package system

// Pointer is a finger or mouse button held down at device pixels.
type Pointer struct {
	X, Y float64
}

// DecodePointers turns held pointers into movement for a screen of w×h
// pixels. The right half moves right and the left half moves left. The
// half of the screen facing away from gravity jumps. Later pointers win the
// direction; any qualifying pointer jumps. No pointers means no movement and
// a released jump.
func DecodePointers(ptrs []Pointer, w, h int, gravity float64) (Direction, bool) {
	move := MoveNone
	jump := false
	midX, midY := float64(w)/2, float64(h)/2
	for _, p := range ptrs {
		if p.X >= midX {
			move = MoveRight
		} else {
			move = MoveLeft
		}
		if gravity >= 0 && p.Y <= midY {
			jump = true
		} else if gravity < 0 && p.Y > midY {
			jump = true
		}
	}
	return move, jump
}
