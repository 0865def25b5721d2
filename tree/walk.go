package tree

import (
	"errors"
)

// ErrCycle is returned if a traversal reaches a node a second time.
// Trees built with AddChild cannot contain cycles, but trees handed to us
// by clients (or built from foreign node types) may be malformed.
var ErrCycle = errors.New("tree contains a cycle")

// ErrEmptyTree is returned if a traversal is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function type to operate on tree nodes during a walk.
// Returning an error stops the walk.
type Action[T comparable] func(n *Node[T], depth int) error

// Walk traverses the (sub-)tree below node top-down, depth-first and in
// child order. Parents are always processed before their children.
// Nil children are skipped.
func Walk[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return walk(node, 0, action, make(map[*Node[T]]struct{}))
}

func walk[T comparable](node *Node[T], depth int, action Action[T], seen map[*Node[T]]struct{}) error {
	if _, ok := seen[node]; ok {
		tracer().Errorf("tree walk: node %v visited twice", node)
		return ErrCycle
	}
	seen[node] = struct{}{}
	if err := action(node, depth); err != nil {
		return err
	}
	for _, ch := range node.children {
		if ch == nil {
			continue
		}
		if err := walk(ch, depth+1, action, seen); err != nil {
			return err
		}
	}
	return nil
}

// Guard is a helper for recursive traversals of foreign tree types.
// It remembers every node it has been shown and reports ErrCycle on
// the second visit of a node.
type Guard[K comparable] struct {
	seen map[K]struct{}
}

// NewGuard creates an empty traversal guard.
func NewGuard[K comparable]() *Guard[K] {
	return &Guard[K]{seen: make(map[K]struct{})}
}

// Visit marks k as visited. It returns ErrCycle if k has been visited before.
func (g *Guard[K]) Visit(k K) error {
	if _, ok := g.seen[k]; ok {
		return ErrCycle
	}
	g.seen[k] = struct{}{}
	return nil
}
