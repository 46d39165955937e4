package social

// Group is a named set of distinct member codes
type Group struct {
	name        string
	members     map[string]struct{}
	memberOrder []string
}

func newGroup(name string) *Group {
	return &Group{
		name:    name,
		members: make(map[string]struct{}),
	}
}

func (g *Group) memberCount() int {
	return len(g.memberOrder)
}

func (g *Group) hasMember(code string) bool {
	_, ok := g.members[code]
	return ok
}

// addMember reports false when code was already subscribed
func (g *Group) addMember(code string) bool {
	if g.hasMember(code) {
		return false
	}
	g.members[code] = struct{}{}
	g.memberOrder = append(g.memberOrder, code)
	return true
}

func (g *Group) memberCodes() []string {
	out := make([]string, len(g.memberOrder))
	copy(out, g.memberOrder)
	return out
}
