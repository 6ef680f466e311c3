package slidable

// Group tracks the live controllers among which at most one may stay
// extended. Construct one per list (or per screen) and pass it to every
// [NewController] call for panels that should auto-close each other.
//
// Controllers join the group at construction and leave it on Dispose; the
// group has no other lifecycle. All controllers in a group must run on the
// same frame goroutine.
type Group struct {
	controllers map[*Controller]struct{}
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{
		controllers: make(map[*Controller]struct{}),
	}
}

// Len returns the number of live controllers in the group.
func (g *Group) Len() int {
	return len(g.controllers)
}

func (g *Group) add(c *Controller) {
	g.controllers[c] = struct{}{}
}

func (g *Group) remove(c *Controller) {
	delete(g.controllers, c)
}

// snapshot copies the member set so a sweep can mutate controllers while
// iterating.
func (g *Group) snapshot() []*Controller {
	controllers := make([]*Controller, 0, len(g.controllers))
	for c := range g.controllers {
		controllers = append(controllers, c)
	}
	return controllers
}
