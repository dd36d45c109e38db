package board

import (
	"context"
	"fmt"

	"github.com/eaugeas/hexboard/errors"
	"github.com/eaugeas/hexboard/hex"
	"github.com/eaugeas/hexboard/logs"
)

// Check verifies that the tiles are properly ordered, that every tile
// has a valid terrain and that the number of tiles matches the number
// of nodes. The first problem found is logged and returned as an error
// with code errors.CodeInvariantViolation.
func (b *Board) Check() error {
	return b.report("Check", b.wellFormed())
}

func (b *Board) wellFormed() *errors.Error {
	if err := isInProperOrder(b.root, nil, nil); err != nil {
		return err
	}

	if count := countNodes(b.root); count != b.len {
		return errors.InvariantViolation(fmt.Sprintf("size %d wrong, should be %d", b.len, count))
	}

	return nil
}

// isInProperOrder checks the subtree rooted at n. Every coordinate must
// lie strictly between lo and hi when they are set
func isInProperOrder(n *node, lo, hi *hex.Coordinate) *errors.Error {
	if n == nil {
		return nil
	}

	if !n.terrain.Valid() {
		return errors.InvariantViolation(fmt.Sprintf("invalid terrain for %s", n.coordinate))
	}

	if lo != nil && lo.Compare(n.coordinate) >= 0 {
		return errors.InvariantViolation(fmt.Sprintf("out of order %s <= %s", n.coordinate, lo))
	}

	if hi != nil && hi.Compare(n.coordinate) <= 0 {
		return errors.InvariantViolation(fmt.Sprintf("out of order %s >= %s", n.coordinate, hi))
	}

	if err := isInProperOrder(n.left, lo, &n.coordinate); err != nil {
		return err
	}

	return isInProperOrder(n.right, &n.coordinate, hi)
}

func countNodes(n *node) int {
	if n == nil {
		return 0
	}

	return 1 + countNodes(n.left) + countNodes(n.right)
}

// report logs err once and returns it as an error value
func (b *Board) report(callType string, err *errors.Error) error {
	if err == nil {
		return nil
	}

	fields := logs.MapFields{"call_type": callType}
	err.Log(fields)
	b.logger.Error(context.Background(), "invariant error", fields)

	return err
}

func (b *Board) assertWellFormed(where string) {
	if !b.opts.CheckInvariants {
		return
	}

	if err := b.Check(); err != nil {
		panic(errors.Wrapf(err, "invariant broken %s", where))
	}
}
