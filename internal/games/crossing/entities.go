package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Positioner is implemented by everything the render phase draws at a
// pixel position.
type Positioner interface {
	PixelPos() (x, y float64)
}

// Enemy is a bug running left to right along one lane.
type Enemy struct {
	X      float64 // Left edge in pixels; may be off-screen
	Row    int     // Lane, fixed for the enemy's lifetime
	Speed  float64 // Pixels per second, positive
	Sprite string
}

// Update advances the enemy by speed·dt. Removal past the right edge is
// the spawner's job.
func (e *Enemy) Update(dt float64) {
	e.X += e.Speed * dt
}

// PixelPos returns the enemy's draw origin.
func (e *Enemy) PixelPos() (x, y float64) {
	return e.X, ToPixelY(e.Row)
}

// Player is the token the user steers across the board.
type Player struct {
	Pos    Position
	Won    bool
	Lost   bool
	Lives  int
	Wins   int
	Sprite string
}

// NewPlayer creates a player standing on start with the given lives.
func NewPlayer(start Position, lives int) *Player {
	return &Player{
		Pos:    start,
		Lives:  lives,
		Sprite: SpritePlayer,
	}
}

// Update flags a win once the player stands on the goal row.
func (p *Player) Update() {
	if p.Pos.Row == 0 {
		p.Won = true
	}
}

// HandleInput moves the player one cell in direction d unless the target
// cell is off the board or occupied by an obstacle. Either the whole move
// happens or nothing does. Returns whether the player moved.
func (p *Player) HandleInput(d core.Direction, obstacles Obstacles) bool {
	if !d.Valid() {
		return false
	}
	next := p.Pos.Step(d)
	if !next.InBounds() || obstacles.Occupied(next) {
		return false
	}
	p.Pos = next
	return true
}

// PixelPos returns the player's draw origin.
func (p *Player) PixelPos() (x, y float64) {
	return p.Pos.PixelPos()
}

// Obstacle is a rock blocking one cell for the duration of a round.
type Obstacle struct {
	Pos    Position
	Sprite string
}

// PixelPos returns the obstacle's draw origin.
func (o Obstacle) PixelPos() (x, y float64) {
	return o.Pos.PixelPos()
}

// Obstacles is the set of rocks placed for the current round.
type Obstacles []Obstacle

// Occupied reports whether any obstacle stands on p.
func (obs Obstacles) Occupied(p Position) bool {
	for _, o := range obs {
		if o.Pos == p {
			return true
		}
	}
	return false
}
