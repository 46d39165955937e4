package social

import (
	"go.uber.org/zap"
	"socialgraph/backend/internal/constants"
)

// ============================================================================
// Group Operations
// ============================================================================

// CreateGroup registers a group name. Creating an existing group is a no-op
// and reports false.
func (g *Graph) CreateGroup(name string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.groups[name]; exists {
		g.done(constants.OpCreateGroup, nil)
		return false
	}

	g.groups[name] = newGroup(name)
	g.logger.Debug("Group created", zap.String("group", name))
	g.done(constants.OpCreateGroup, nil)
	return true
}

// AddPersonToGroup subscribes a person to a group and reports whether the
// membership is new.
func (g *Graph) AddPersonToGroup(code, groupName string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, err := g.person(code); err != nil {
		g.done(constants.OpAddPersonToGroup, err)
		return false, err
	}
	grp, err := g.group(groupName)
	if err != nil {
		g.done(constants.OpAddPersonToGroup, err)
		return false, err
	}

	added := grp.addMember(code)
	if added {
		g.logger.Debug("Person added to group",
			zap.String("code", code),
			zap.String("group", groupName),
		)
	}
	g.done(constants.OpAddPersonToGroup, nil)
	return added, nil
}

// ListGroupMembers returns member codes in join order
func (g *Graph) ListGroupMembers(groupName string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	grp, err := g.group(groupName)
	if err != nil {
		return nil, err
	}
	return grp.memberCodes(), nil
}

// ListGroups returns every group name in ascending order
func (g *Graph) ListGroups() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.groups)
}
