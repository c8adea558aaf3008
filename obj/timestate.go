package obj

// TimeState is a snapshot of the player's position, speed and visual.
type TimeState struct {
	X, Y   int
	XSpeed float64
	YSpeed float64
	Sprite PlayerSprite
}
