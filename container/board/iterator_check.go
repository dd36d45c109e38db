package board

import (
	"fmt"

	"github.com/eaugeas/hexboard/errors"
)

// Check verifies the board and the iterator state. A stale iterator
// is not inspected beyond the board. Otherwise the coordinate of the
// current tile must be on the board, every pending node must be the next greater
// ancestor of the one above it, and the node that follows the current
// tile must be on top of the stack.
func (it *Iterator) Check() error {
	if err := it.board.Check(); err != nil {
		return err
	}

	return it.board.report("Iterator.Check", it.wellFormed())
}

func (it *Iterator) wellFormed() *errors.Error {
	if it.stale || it.revision != it.board.revision {
		return nil
	}

	var currentNode *node
	if it.hasCurrent {
		if currentNode = it.board.root.find(it.current.Coordinate()); currentNode == nil {
			return errors.InvariantViolation(fmt.Sprintf("no node in tree for %s", it.current))
		}
	}

	var prev *node
	for _, n := range it.pending {
		if !isNextGreaterAncestor(it.board.root, n, prev) {
			return errors.InvariantViolation("not next greatest ancestor")
		}
		prev = n
	}

	if it.hasCurrent && !isSuccessorOnTop(it.board.root, currentNode, prev) {
		return errors.InvariantViolation(fmt.Sprintf("order of stack is wrong after %s", it.current))
	}

	return nil
}

// isNextGreaterAncestor returns true if n lies on the right spine of
// below's left subtree, or on the right spine from root when below is
// nil. A node on that spine is the lowest node greater than everything
// left to walk under it
func isNextGreaterAncestor(root, n, below *node) bool {
	curr := root
	if below != nil {
		curr = below.left
	}

	for ; curr != nil; curr = curr.right {
		if curr == n {
			return true
		}
	}

	return false
}

// isSuccessorOnTop returns true if the node following n in order is
// top, or both are missing
func isSuccessorOnTop(root, n, top *node) bool {
	if n == nil {
		return top == nil
	}

	if n.right == nil {
		// the successor is an ancestor: n must be the highest
		// node of the successor's left subtree
		return isNextGreaterAncestor(root, n, top)
	}

	return n.right.min() == top
}

func (it *Iterator) assertWellFormed(where string) {
	if !it.board.opts.CheckInvariants {
		return
	}

	if err := it.Check(); err != nil {
		panic(errors.Wrapf(err, "iterator invariant broken %s", where))
	}
}
