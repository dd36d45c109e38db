package hex

// Terrain is the value kept for each position of a board. Terrains
// only support equality.
type Terrain uint8

const (
	// NoTerrain is the zero value and does not describe any position
	NoTerrain Terrain = iota
	Inaccessible
	Desert
	Mountain
	Forest
	Land
	Water
	City
)

var terrainNames = [...]string{
	NoTerrain:    "none",
	Inaccessible: "inaccessible",
	Desert:       "desert",
	Mountain:     "mountain",
	Forest:       "forest",
	Land:         "land",
	Water:        "water",
	City:         "city",
}

// Terrains returns every valid terrain
func Terrains() []Terrain {
	return []Terrain{Inaccessible, Desert, Mountain, Forest, Land, Water, City}
}

// Valid returns true if t is one of the known terrains
func (t Terrain) Valid() bool {
	return t > NoTerrain && t <= City
}

func (t Terrain) String() string {
	if int(t) < len(terrainNames) {
		return terrainNames[t]
	}
	return "unknown"
}
