package board

import (
	"testing"

	"github.com/eaugeas/hexboard/errors"
	"github.com/eaugeas/hexboard/hex"
	"github.com/stretchr/testify/assert"
)

// newBareIterator returns an iterator over a medium board with an
// empty stack so that tests can place the nodes themselves
func newBareIterator(t hex.Terrain) (*Board, *Iterator) {
	b, _ := newTestBoard(false)
	makeMedium(b, t)
	return b, &Iterator{board: b, revision: b.revision}
}

func assertIteratorWellFormed(t *testing.T, expected bool, it *Iterator) {
	err := it.Check()
	if expected {
		assert.NoError(t, err)
	} else {
		assert.True(t, errors.HasCode(err, errors.CodeInvariantViolation), "expected an invariant violation")
	}
}

func tileAt(n *node) hex.Tile {
	return ht(n.terrain, n.coordinate)
}

func (it *Iterator) setCurrent(tile hex.Tile) {
	it.current = tile
	it.hasCurrent = true
}

func (it *Iterator) clearCurrent() {
	it.current = hex.Tile{}
	it.hasCurrent = false
}

func (it *Iterator) push(n *node) {
	it.pending = append(it.pending, n)
}

func (it *Iterator) pop() {
	it.pending = it.pending[:len(it.pending)-1]
}

func TestIteratorCheckFresh(t *testing.T) {
	b, _ := newTestBoard(false)
	it := b.Iterator()
	assertIteratorWellFormed(t, true, it)

	makeMedium(b, hex.City)
	it = b.Iterator()
	assertIteratorWellFormed(t, true, it)

	b.len = 8
	assertIteratorWellFormed(t, false, it)
}

func TestIteratorCheckStale(t *testing.T) {
	b, it := newBareIterator(hex.Desert)
	it.revision--

	// nothing is inspected for a stale iterator
	it.setCurrent(ht(hex.Mountain, c(9, 9)))
	it.push(b.root.left.left)
	assertIteratorWellFormed(t, true, it)

	b.len = 8
	assertIteratorWellFormed(t, false, it)
}

func TestIteratorCheckCurrent(t *testing.T) {
	b, it := newBareIterator(hex.Water)
	h7 := b.root.right.right

	it.setCurrent(ht(hex.Desert, c(4, 0)))
	assertIteratorWellFormed(t, false, it)
	it.setCurrent(ht(hex.Land, c(8, 4)))
	assertIteratorWellFormed(t, false, it)

	it.setCurrent(tileAt(h7))
	assertIteratorWellFormed(t, true, it)
}

func TestIteratorCheckPendingRoots(t *testing.T) {
	b, it := newBareIterator(hex.Inaccessible)

	it.push(b.root)
	assertIteratorWellFormed(t, true, it)
	it.pop()

	it.push(b.root.left)
	assertIteratorWellFormed(t, false, it)
	it.pop()

	it.push(b.root.left.right)
	assertIteratorWellFormed(t, false, it)
	it.pop()

	it.push(b.root.right)
	assertIteratorWellFormed(t, true, it)
	it.pop()

	it.push(b.root.right.right)
	assertIteratorWellFormed(t, true, it)
	it.pop()

	it.push(nil)
	assertIteratorWellFormed(t, false, it)
	it.pop()

	it.push(b.root.right.right.left)
	assertIteratorWellFormed(t, false, it)
	it.pop()
}

func TestIteratorCheckCurrentAgainstTop(t *testing.T) {
	b, it := newBareIterator(hex.Land)
	h3 := b.root.left.right

	it.push(b.root)
	assertIteratorWellFormed(t, true, it)
	it.setCurrent(tileAt(h3))
	assertIteratorWellFormed(t, true, it)
	it.setCurrent(tileAt(b.root.left))
	assertIteratorWellFormed(t, false, it)
	it.setCurrent(tileAt(b.root))
	it.pop()
	assertIteratorWellFormed(t, false, it)

	it.push(b.root.right)
	// current is still the root
	assertIteratorWellFormed(t, true, it)
	it.setCurrent(tileAt(h3))
	assertIteratorWellFormed(t, false, it)
	it.setCurrent(tileAt(b.root.right.right))
	assertIteratorWellFormed(t, false, it)
	it.setCurrent(tileAt(b.root.right.right.left))
	assertIteratorWellFormed(t, false, it)
	it.pop()

	it.push(b.root.right.right)
	it.setCurrent(tileAt(b.root.right.right.left))
	assertIteratorWellFormed(t, true, it)
	it.setCurrent(tileAt(b.root.right))
	assertIteratorWellFormed(t, false, it)
	it.clearCurrent()
	assertIteratorWellFormed(t, true, it)
	it.setCurrent(tileAt(b.root.right.right))
	assertIteratorWellFormed(t, false, it)
	it.pop()

	// the highest tile is current and nothing is pending
	assertIteratorWellFormed(t, true, it)
}

func TestIteratorCheckForeignNodes(t *testing.T) {
	b, it := newBareIterator(hex.Forest)

	fakeRoot := *b.root
	it.push(&fakeRoot)
	assertIteratorWellFormed(t, false, it)

	it.pending = nil
	it.push(b.root)
	fakeLeft := *b.root.left
	it.push(&fakeLeft)
	assertIteratorWellFormed(t, false, it)

	it.pop()
	it.push(b.root.left)
	assertIteratorWellFormed(t, true, it)
}

func TestIteratorCheckPendingChain(t *testing.T) {
	b, it := newBareIterator(hex.Water)

	it.push(b.root)
	it.push(b.root)
	assertIteratorWellFormed(t, false, it)
	it.pop()

	it.push(b.root.right)
	assertIteratorWellFormed(t, false, it)
	it.pop()

	it.push(b.root.left)
	assertIteratorWellFormed(t, true, it)

	it.push(b.root.left.left)
	assertIteratorWellFormed(t, true, it)
	it.pop()
	it.push(b.root.left.right)
	assertIteratorWellFormed(t, false, it)
}

func TestIteratorCheckAncestorsMissing(t *testing.T) {
	b, it := newBareIterator(hex.City)

	it.push(b.root.left)
	assertIteratorWellFormed(t, false, it)
	it.push(b.root.left.left)
	assertIteratorWellFormed(t, false, it)

	it.pending = nil
	it.push(b.root.right)
	it.push(b.root.right.right)
	assertIteratorWellFormed(t, false, it)

	it.pending = nil
	it.push(b.root.right.right)
	it.setCurrent(tileAt(b.root.right))
	assertIteratorWellFormed(t, false, it)
	it.push(b.root.right.right.left)
	assertIteratorWellFormed(t, true, it)
}
