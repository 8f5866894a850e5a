package element

import "github.com/weft-ui/weft/pkg/view"

// Container is the structural widget grouping children. Containers always
// carry scroll state so scrolling and hit-testing never have to deal with a
// missing entry, whether or not a particular container scrolls.
type Container struct {
	ElementData
	Scrollable bool
}

// ContainerState is the per-instance state of a Container. It doubles as
// the baseline state the reconciler substitutes for any widget that declares
// none of its own.
type ContainerState struct {
	Scroll ScrollState
}

// NewContainer returns a non-scrollable container.
func NewContainer() *Container {
	return &Container{}
}

// Scroll marks the container scrollable and returns it.
func (c *Container) Scroll() *Container {
	c.Scrollable = true
	return c
}

// Name implements view.Element.
func (c *Container) Name() string {
	return "Container"
}

// InitializeState implements view.Element.
func (c *Container) InitializeState() *view.StateItem {
	return &view.StateItem{Data: &ContainerState{}}
}

// UpdateState implements view.Element. Scroll offsets are user state and
// persist untouched.
func (c *Container) UpdateState(*view.StateItem) {}
