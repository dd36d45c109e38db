package board

import "github.com/eaugeas/hexboard/hex"

// node of the board. Nodes do not keep a reference to their parent, so
// any walk that needs to move upwards keeps its own stack of ancestors
type node struct {
	coordinate hex.Coordinate
	terrain    hex.Terrain
	left       *node
	right      *node
}

func (n *node) tile() hex.Tile {
	return hex.NewTile(n.coordinate, n.terrain)
}

// min returns the node in the subtree of the lowest order. It
// returns nil if the subtree is empty
func (n *node) min() *node {
	curr := n

	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// max returns the node in the subtree of the highest order. It
// returns nil if the subtree is empty
func (n *node) max() *node {
	curr := n

	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// find returns the node holding coordinate c or nil
func (n *node) find(c hex.Coordinate) *node {
	for curr := n; curr != nil; {
		cmp := c.Compare(curr.coordinate)
		switch {
		case cmp == 0:
			return curr
		case cmp < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}

	return nil
}

// ceiling returns the node in the subtree that has the
// lowest order which is not lower than c
func (n *node) ceiling(c hex.Coordinate) *node {
	var higher *node

	for curr := n; curr != nil; {
		if c.Compare(curr.coordinate) <= 0 {
			higher = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	return higher
}

// floor returns the node in the subtree that has the
// highest order which is not higher than c
func (n *node) floor(c hex.Coordinate) *node {
	var lower *node

	for curr := n; curr != nil; {
		if c.Compare(curr.coordinate) < 0 {
			curr = curr.left
		} else {
			lower = curr
			curr = curr.right
		}
	}

	return lower
}

// pushLeftSpine pushes n, n.left, n.left.left, ... onto pending
func pushLeftSpine(pending []*node, n *node) []*node {
	for curr := n; curr != nil; curr = curr.left {
		pending = append(pending, curr)
	}

	return pending
}

// inOrderWalk calls fn on every node of the subtree in ascending
// order until fn returns false
func (n *node) inOrderWalk(fn func(*node) bool) {
	pending := pushLeftSpine(nil, n)

	for len(pending) > 0 {
		curr := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if !fn(curr) {
			return
		}

		pending = pushLeftSpine(pending, curr.right)
	}
}

// removeNode removes the node holding coordinate c from the subtree
// rooted at n and returns the new root of the subtree. A node with two
// children takes the contents of its in-order predecessor, which is
// then removed from the left subtree instead
func removeNode(n *node, c hex.Coordinate) *node {
	if n == nil {
		return nil
	}

	cmp := c.Compare(n.coordinate)
	switch {
	case cmp < 0:
		n.left = removeNode(n.left, c)
		return n
	case cmp > 0:
		n.right = removeNode(n.right, c)
		return n
	}

	switch {
	case n.left == nil:
		return n.right
	case n.right == nil:
		return n.left
	}

	pred := n.left.max()
	n.coordinate = pred.coordinate
	n.terrain = pred.terrain
	n.left = removeNode(n.left, pred.coordinate)

	return n
}
