package crossing

// Resource identifiers requested from the resource provider.
const (
	SpriteWater  = "water-block"
	SpriteStone  = "stone-block"
	SpriteGrass  = "grass-block"
	SpriteEnemy  = "enemy-bug"
	SpritePlayer = "char-boy"
	SpriteHeart  = "heart"
	SpriteRock   = "rock"
)

// rowSprites holds the terrain tile of each board row, top to bottom:
// water goal, three stone lanes, two grass rows.
var rowSprites = [Rows]string{
	SpriteWater,
	SpriteStone,
	SpriteStone,
	SpriteStone,
	SpriteGrass,
	SpriteGrass,
}

// Manifest lists every resource the game draws. Front-ends load all of them
// before the loop starts.
func Manifest() []string {
	return []string{
		SpriteStone,
		SpriteWater,
		SpriteGrass,
		SpriteEnemy,
		SpritePlayer,
		SpriteHeart,
		SpriteRock,
	}
}
