package hex

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinateCompareBDominates(t *testing.T) {
	assert.Equal(t, -1, NewCoordinate(9, 0).Compare(NewCoordinate(0, 1)))
	assert.Equal(t, 1, NewCoordinate(0, 1).Compare(NewCoordinate(9, 0)))
}

func TestCoordinateCompareSameB(t *testing.T) {
	assert.Equal(t, -1, NewCoordinate(2, 1).Compare(NewCoordinate(3, 1)))
	assert.Equal(t, 1, NewCoordinate(3, 1).Compare(NewCoordinate(2, 1)))
	assert.Equal(t, 0, NewCoordinate(3, 1).Compare(NewCoordinate(3, 1)))
}

func TestCoordinateNegative(t *testing.T) {
	assert.True(t, NewCoordinate(-5, -1).Less(NewCoordinate(5, -1)))
	assert.True(t, NewCoordinate(100, -2).Less(NewCoordinate(-100, -1)))
}

func TestCoordinateSort(t *testing.T) {
	cs := []Coordinate{
		NewCoordinate(3, 1), NewCoordinate(2, 2), NewCoordinate(3, 0),
		NewCoordinate(2, 1), NewCoordinate(7, 4),
	}

	sort.Slice(cs, func(i, j int) bool { return CompareCoordinates(cs[i], cs[j]) < 0 })

	assert.Equal(t, []Coordinate{
		NewCoordinate(3, 0), NewCoordinate(2, 1), NewCoordinate(3, 1),
		NewCoordinate(2, 2), NewCoordinate(7, 4),
	}, cs)
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "<2,-1>", NewCoordinate(2, -1).String())
}

func TestTerrainValid(t *testing.T) {
	assert.False(t, NoTerrain.Valid())
	assert.False(t, Terrain(200).Valid())
	for _, terrain := range Terrains() {
		assert.True(t, terrain.Valid(), terrain.String())
	}
}

func TestTerrainString(t *testing.T) {
	assert.Equal(t, "city", City.String())
	assert.Equal(t, "none", NoTerrain.String())
	assert.Equal(t, "unknown", Terrain(200).String())
}

func TestTileNewOK(t *testing.T) {
	tile := NewTile(NewCoordinate(1, 2), Water)

	assert.Equal(t, NewCoordinate(1, 2), tile.Coordinate())
	assert.Equal(t, Water, tile.Terrain())
	assert.Equal(t, "<1,2>:water", tile.String())
}

func TestTileNewErrPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewTile(NewCoordinate(0, 0), NoTerrain)
	})
}
