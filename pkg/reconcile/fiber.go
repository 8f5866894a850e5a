package reconcile

import "github.com/weft-ui/weft/pkg/view"

// Fiber pairs a logical node with its visual counterpart, when one exists.
// Component nodes expand transparently into the visual tree, so a fiber for
// a component carries a nil Visual.
type Fiber struct {
	Logical *LogicalNode
	Visual  view.Element
}

// NewFiber returns the root fiber for a logical tree and the visual root it
// was reconciled against.
func NewFiber(logical *LogicalNode, visual view.Element) Fiber {
	return Fiber{Logical: logical, Visual: visual}
}

// PreOrderIterator walks a fiber depth-first, parents before children.
type PreOrderIterator struct {
	logicals []*LogicalNode
	visuals  []view.Element
}

// PreOrder returns a depth-first iterator over the fiber.
func (f Fiber) PreOrder() *PreOrderIterator {
	it := &PreOrderIterator{}
	if f.Logical != nil {
		it.logicals = append(it.logicals, f.Logical)
	}
	if f.Visual != nil {
		it.visuals = append(it.visuals, f.Visual)
	}
	return it
}

// Next returns the next fiber in pre-order, pairing a visual node whenever
// its id matches the logical node being visited.
func (it *PreOrderIterator) Next() (Fiber, bool) {
	if len(it.logicals) == 0 {
		return Fiber{}, false
	}
	node := it.logicals[len(it.logicals)-1]
	it.logicals = it.logicals[:len(it.logicals)-1]
	for i := len(node.Children) - 1; i >= 0; i-- {
		it.logicals = append(it.logicals, node.Children[i])
	}

	var visual view.Element
	if len(it.visuals) > 0 {
		top := it.visuals[len(it.visuals)-1]
		if top.ID() == node.ID {
			it.visuals = it.visuals[:len(it.visuals)-1]
			children := top.Children()
			for i := len(children) - 1; i >= 0; i-- {
				it.visuals = append(it.visuals, children[i])
			}
			visual = top
		}
	}
	return Fiber{Logical: node, Visual: visual}, true
}

// LevelOrderIterator walks a fiber breadth-first.
type LevelOrderIterator struct {
	logicals []*LogicalNode
	visuals  []view.Element
}

// LevelOrder returns a breadth-first iterator over the fiber.
func (f Fiber) LevelOrder() *LevelOrderIterator {
	it := &LevelOrderIterator{}
	if f.Logical != nil {
		it.logicals = append(it.logicals, f.Logical)
	}
	if f.Visual != nil {
		it.visuals = append(it.visuals, f.Visual)
	}
	return it
}

// Next returns the next fiber in level order.
func (it *LevelOrderIterator) Next() (Fiber, bool) {
	if len(it.logicals) == 0 {
		return Fiber{}, false
	}
	node := it.logicals[0]
	it.logicals = it.logicals[1:]
	it.logicals = append(it.logicals, node.Children...)

	var visual view.Element
	if len(it.visuals) > 0 && it.visuals[0].ID() == node.ID {
		visual = it.visuals[0]
		it.visuals = it.visuals[1:]
		it.visuals = append(it.visuals, visual.Children()...)
	}
	return Fiber{Logical: node, Visual: visual}, true
}
