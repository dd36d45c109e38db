// Package board implements a hex board: a collection of tiles where no two
// tiles share a coordinate. Tiles are kept in an unbalanced binary search
// tree ordered by coordinate, so how balanced the branches are depends
// exclusively on the order of the operations performed on the board.
package board

import (
	"os"
	"strings"

	"github.com/eaugeas/hexboard/hex"
	"github.com/eaugeas/hexboard/logs"
	"github.com/sirupsen/logrus"
)

// Opts is the configuration of a Board
type Opts struct {
	// CheckInvariants enables a full consistency check of the board
	// before and after every operation. A failed check panics. It costs
	// O(n) per operation and is meant for tests and debugging
	CheckInvariants bool

	// Logger receives the reports of failed consistency checks. Defaults
	// to a logrus logger writing warnings and errors to stderr
	Logger logs.Logger
}

// Board is a collection of hex tiles with at most one tile
// per coordinate. A Board is not safe for concurrent use.
type Board struct {
	root *node
	len  int

	// revision is incremented by every change that could invalidate
	// an iterator. Updating the terrain of an existing tile keeps the
	// shape of the tree and does not change it
	revision uint64

	opts   Opts
	logger logs.Logger
}

// New creates an empty board with the default options
func New() *Board {
	return NewWithOpts(Opts{})
}

// NewWithOpts creates an empty board with the provided options
func NewWithOpts(opts Opts) *Board {
	if opts.Logger == nil {
		opts.Logger = logs.NewLogrus(logs.LogrusLoggerProperties{
			Level:  logrus.WarnLevel,
			Output: os.Stderr,
		})
	}

	b := &Board{opts: opts, logger: opts.Logger.ForClass("container", "board")}
	b.assertWellFormed("in constructor")
	return b
}

// Len returns the number of tiles on the board
func (b *Board) Len() int {
	b.assertWellFormed("in Len")
	return b.len
}

// Empty returns true if the board has no tiles
func (b *Board) Empty() bool {
	return b.Len() == 0
}

// TerrainAt returns the terrain at coordinate c. The boolean is
// false if there is no tile at c
func (b *Board) TerrainAt(c hex.Coordinate) (hex.Terrain, bool) {
	b.assertWellFormed("in TerrainAt")

	n := b.root.find(c)
	if n == nil {
		return hex.NoTerrain, false
	}

	return n.terrain, true
}

// Contains returns true if the board has a tile at the tile's
// coordinate with the same terrain
func (b *Board) Contains(tile hex.Tile) bool {
	terrain, ok := b.TerrainAt(tile.Coordinate())
	return ok && terrain == tile.Terrain()
}

// Add places tile on the board, replacing the terrain of any tile
// already at the same coordinate. It returns true if the contents of
// the board changed. It panics if the tile has no valid terrain
func (b *Board) Add(tile hex.Tile) bool {
	b.assertWellFormed("in Add")

	if !tile.Terrain().Valid() {
		panic("attempt to add a tile without a valid terrain")
	}

	var lag *node
	var isLeft bool
	c := tile.Coordinate()
	curr := b.root

	for curr != nil {
		cmp := c.Compare(curr.coordinate)
		if cmp == 0 {
			break
		}

		lag = curr
		isLeft = cmp < 0
		if isLeft {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	if curr != nil {
		if curr.terrain == tile.Terrain() {
			return false
		}

		curr.terrain = tile.Terrain()
		b.assertWellFormed("after Add")
		return true
	}

	n := &node{coordinate: c, terrain: tile.Terrain()}
	switch {
	case lag == nil:
		b.root = n
	case isLeft:
		lag.left = n
	default:
		lag.right = n
	}

	b.len++
	b.revision++
	b.assertWellFormed("after Add")
	return true
}

// Remove removes tile from the board. Only a tile with the same
// coordinate and terrain is removed. It returns true if the tile
// was found
func (b *Board) Remove(tile hex.Tile) bool {
	if !b.Contains(tile) {
		return false
	}

	b.root = removeNode(b.root, tile.Coordinate())
	b.len--
	b.revision++
	b.assertWellFormed("after Remove")
	return true
}

// Clear removes every tile from the board. Clearing an empty
// board does not modify it
func (b *Board) Clear() {
	b.assertWellFormed("in Clear")

	if b.len == 0 {
		return
	}

	b.root = nil
	b.len = 0
	b.revision++
	b.assertWellFormed("after Clear")
}

// Min returns the tile with the lowest coordinate. The boolean is
// false if the board is empty
func (b *Board) Min() (hex.Tile, bool) {
	b.assertWellFormed("in Min")
	return tileOf(b.root.min())
}

// Max returns the tile with the highest coordinate. The boolean is
// false if the board is empty
func (b *Board) Max() (hex.Tile, bool) {
	b.assertWellFormed("in Max")
	return tileOf(b.root.max())
}

// Ceiling returns the tile with the lowest coordinate that is not
// lower than c
func (b *Board) Ceiling(c hex.Coordinate) (hex.Tile, bool) {
	b.assertWellFormed("in Ceiling")
	return tileOf(b.root.ceiling(c))
}

// Floor returns the tile with the highest coordinate that is not
// higher than c
func (b *Board) Floor(c hex.Coordinate) (hex.Tile, bool) {
	b.assertWellFormed("in Floor")
	return tileOf(b.root.floor(c))
}

// InOrderWalk calls fn with every tile in ascending coordinate
// order. fn must not modify the board
func (b *Board) InOrderWalk(fn func(hex.Tile)) {
	b.assertWellFormed("in InOrderWalk")
	b.root.inOrderWalk(func(n *node) bool {
		fn(n.tile())
		return true
	})
}

// Tiles returns a copy of all the tiles in ascending coordinate order
func (b *Board) Tiles() []hex.Tile {
	tiles := make([]hex.Tile, 0, b.Len())
	b.InOrderWalk(func(tile hex.Tile) {
		tiles = append(tiles, tile)
	})
	return tiles
}

func (b *Board) String() string {
	var sb strings.Builder

	sb.WriteString("[")
	first := true
	b.InOrderWalk(func(tile hex.Tile) {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(tile.String())
	})
	sb.WriteString("]")

	return sb.String()
}

func tileOf(n *node) (hex.Tile, bool) {
	if n == nil {
		return hex.Tile{}, false
	}

	return n.tile(), true
}
