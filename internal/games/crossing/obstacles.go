package crossing

// Rand is the random source consumed by the layout generator and the
// spawner. *rand.Rand satisfies it; tests pass a seeded one.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// GenerateObstacles places count rocks on row, each at an independently
// drawn uniform column. Two rocks may share a column.
func GenerateObstacles(rng Rand, count, row int) Obstacles {
	obstacles := make(Obstacles, 0, count)
	for i := 0; i < count; i++ {
		obstacles = append(obstacles, Obstacle{
			Pos:    Position{Col: rng.Intn(Cols), Row: row},
			Sprite: SpriteRock,
		})
	}
	return obstacles
}
