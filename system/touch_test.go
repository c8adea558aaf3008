package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodePointers(t *testing.T) {
	const w, h = 1080, 2280
	tests := []struct {
		name    string
		ptrs    []Pointer
		gravity float64
		move    Direction
		jump    bool
	}{
		{"released", nil, 3, MoveNone, false},
		{"bottom right", []Pointer{{X: 900, Y: 2000}}, 3, MoveRight, false},
		{"bottom left", []Pointer{{X: 100, Y: 2000}}, 3, MoveLeft, false},
		{"top right jumps", []Pointer{{X: 540, Y: 1140}}, 3, MoveRight, true},
		{"top does not jump inverted", []Pointer{{X: 100, Y: 100}}, -3, MoveLeft, false},
		{"bottom jumps inverted", []Pointer{{X: 100, Y: 1141}}, -3, MoveLeft, true},
		{"last pointer steers", []Pointer{{X: 100, Y: 100}, {X: 1000, Y: 2000}}, 3, MoveRight, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			move, jump := DecodePointers(tt.ptrs, w, h, tt.gravity)
			assert.Equal(t, tt.move, move)
			assert.Equal(t, tt.jump, jump)
		})
	}
}
