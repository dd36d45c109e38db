package hex

import "fmt"

// Tile pairs a coordinate with the terrain found there. Tiles are
// plain values; changing a copy never affects the board it came from.
type Tile struct {
	coordinate Coordinate
	terrain    Terrain
}

// NewTile returns a tile with terrain t at coordinate c. It panics
// if t is not a valid terrain
func NewTile(c Coordinate, t Terrain) Tile {
	if !t.Valid() {
		panic("tile requires a valid terrain")
	}

	return Tile{coordinate: c, terrain: t}
}

// Coordinate returns the location of the tile
func (t Tile) Coordinate() Coordinate {
	return t.coordinate
}

// Terrain returns the terrain of the tile
func (t Tile) Terrain() Terrain {
	return t.terrain
}

func (t Tile) String() string {
	return fmt.Sprintf("%s:%s", t.coordinate, t.terrain)
}
