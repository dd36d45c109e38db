package board

import (
	"github.com/eaugeas/hexboard/errors"
	"github.com/eaugeas/hexboard/hex"
)

// Iterator walks the tiles of a board in ascending coordinate order.
// An Iterator is single use. Any change to the board that is not made
// through the iterator's own Remove invalidates it, after which every
// call fails with errors.ErrConcurrentModification.
type Iterator struct {
	board *Board

	// pending holds the nodes whose tile has not been produced yet but
	// whose left subtree has been, or is being, walked. The top of the
	// stack is always the next tile to produce
	pending []*node

	// current is the last tile produced, if it can still be removed
	current    hex.Tile
	hasCurrent bool

	revision uint64

	// stale is set once the iterator saw its current tile change
	// underneath it. It stays set for the life of the iterator
	stale bool
}

// Iterator creates an iterator positioned before the lowest tile
func (b *Board) Iterator() *Iterator {
	b.assertWellFormed("in Iterator")

	it := &Iterator{
		board:    b,
		pending:  pushLeftSpine(nil, b.root),
		revision: b.revision,
	}

	it.assertWellFormed("in constructor")
	return it
}

func (it *Iterator) checkRevision() error {
	if it.stale || it.revision != it.board.revision {
		return errors.ErrConcurrentModification
	}

	return nil
}

// HasNext returns true if there are tiles left to produce
func (it *Iterator) HasNext() (bool, error) {
	if err := it.checkRevision(); err != nil {
		return false, err
	}

	return len(it.pending) > 0, nil
}

// Next returns the next tile in coordinate order. The tile is a copy
// and is not affected by later changes to the board
func (it *Iterator) Next() (hex.Tile, error) {
	if err := it.checkRevision(); err != nil {
		return hex.Tile{}, err
	}

	if len(it.pending) == 0 {
		return hex.Tile{}, errors.ErrNoSuchElement
	}

	n := it.pending[len(it.pending)-1]
	it.pending[len(it.pending)-1] = nil
	it.pending = it.pending[:len(it.pending)-1]
	it.pending = pushLeftSpine(it.pending, n.right)

	it.current = n.tile()
	it.hasCurrent = true

	it.assertWellFormed("after Next")
	return it.current, nil
}

// Remove removes from the board the last tile returned by Next. It
// can be called at most once per call to Next. If the terrain of that
// tile was replaced after Next returned it, nothing is removed, an
// error with code errors.CodeConcurrentModification is returned and the
// iterator is invalidated
func (it *Iterator) Remove() error {
	if err := it.checkRevision(); err != nil {
		return err
	}

	if !it.hasCurrent {
		return errors.ErrIllegalState
	}

	if !it.board.Remove(it.current) {
		// the terrain was updated in place after the tile was produced
		err := errors.Wrapf(errors.ErrConcurrentModification,
			"tile %s changed since it was produced", it.current)
		it.current = hex.Tile{}
		it.hasCurrent = false
		it.stale = true
		return err
	}

	it.current = hex.Tile{}
	it.hasCurrent = false
	it.revision = it.board.revision

	it.assertWellFormed("after Remove")
	return nil
}
