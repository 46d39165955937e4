package social

import (
	"go.uber.org/zap"
	"socialgraph/backend/internal/constants"
	apperrors "socialgraph/backend/pkg/errors"
)

// ============================================================================
// Friendship Operations
// ============================================================================

// AddFriendship links two persons in both directions. It reports whether a new
// edge was created; repeating an existing friendship changes nothing.
func (g *Graph) AddFriendship(codeA, codeB string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	a, err := g.person(codeA)
	if err != nil {
		g.done(constants.OpAddFriendship, err)
		return false, err
	}
	b, err := g.person(codeB)
	if err != nil {
		g.done(constants.OpAddFriendship, err)
		return false, err
	}
	if codeA == codeB {
		err := apperrors.NewInvalidFriendship(codeA)
		g.done(constants.OpAddFriendship, err)
		return false, err
	}

	if a.isFriend(codeB) {
		g.done(constants.OpAddFriendship, nil)
		return false, nil
	}

	a.addFriend(codeB)
	b.addFriend(codeA)
	g.friendships = append(g.friendships, Friendship{A: codeA, B: codeB})

	g.logger.Debug("Friendship added",
		zap.String("a", codeA),
		zap.String("b", codeB),
	)
	g.observer.ObserveFriendship()
	g.done(constants.OpAddFriendship, nil)
	return true, nil
}

// ListFriends returns the direct friends of a person in the order they were added
func (g *Graph) ListFriends(code string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(code)
	if err != nil {
		return nil, err
	}
	return p.friendCodes(), nil
}

// FriendsOfFriends returns one entry per two-hop path from code, duplicates
// included. The walk back to the origin through each friend is skipped.
func (g *Graph) FriendsOfFriends(code string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(code)
	if err != nil {
		return nil, err
	}
	return g.secondHop(p), nil
}

// FriendsOfFriendsDistinct is FriendsOfFriends with duplicates removed,
// keeping first-seen order.
func (g *Graph) FriendsOfFriendsDistinct(code string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(code)
	if err != nil {
		return nil, err
	}
	return distinct(g.secondHop(p)), nil
}

// secondHop walks friends of friends; caller holds the lock
func (g *Graph) secondHop(p *Person) []string {
	out := []string{}
	for _, friendCode := range p.friendOrder {
		for _, second := range g.persons[friendCode].friendOrder {
			if second == p.code {
				continue
			}
			out = append(out, second)
		}
	}
	return out
}

// secondHopCount counts distinct second-degree friends; caller holds the lock
func (g *Graph) secondHopCount(p *Person) int {
	seen := make(map[string]struct{})
	for _, friendCode := range p.friendOrder {
		for _, second := range g.persons[friendCode].friendOrder {
			if second != p.code {
				seen[second] = struct{}{}
			}
		}
	}
	return len(seen)
}

func distinct(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
