package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// DetectCollisions marks the player as lost when any enemy on the player's
// row has its [x, x+width] span overlapping [playerX-reach, playerX+reach].
// Several simultaneous hits produce the same single flag.
func DetectCollisions(player *Player, enemies []*Enemy, width, reach float64) bool {
	px, _ := player.PixelPos()
	hitZone := core.Around(px, reach)

	for _, e := range enemies {
		if e.Row != player.Pos.Row {
			continue
		}
		if core.NewSpan(e.X, width).Overlaps(hitZone) {
			player.Lost = true
			return true
		}
	}
	return false
}
