package social

// ============================================================================
// Ranking Queries
//
// Each query returns false when there is no candidate. Ties go to the
// lexicographically smallest code or name so results are reproducible.
// ============================================================================

// PersonWithMostFriends returns the code with the highest direct-friend count
func (g *Graph) PersonWithMostFriends() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var r ranking
	for code, p := range g.persons {
		r.offer(code, p.friendCount())
	}
	return r.result()
}

// PersonWithMostFriendsOfFriends returns the code with the most distinct
// second-degree friends. Every person's second hop is recomputed on each call.
func (g *Graph) PersonWithMostFriendsOfFriends() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var r ranking
	for code, p := range g.persons {
		r.offer(code, g.secondHopCount(p))
	}
	return r.result()
}

// LargestGroup returns the name of the group with the most members
func (g *Graph) LargestGroup() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var r ranking
	for name, grp := range g.groups {
		r.offer(name, grp.memberCount())
	}
	return r.result()
}

// PersonInMostGroups returns the code subscribed to the most groups. Persons
// without any membership are not candidates.
func (g *Graph) PersonInMostGroups() (string, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	counts := make(map[string]int)
	for _, grp := range g.groups {
		for _, code := range grp.memberOrder {
			counts[code]++
		}
	}

	var r ranking
	for code, n := range counts {
		r.offer(code, n)
	}
	return r.result()
}

// ranking keeps the best (score, key) pair seen so far
type ranking struct {
	key   string
	score int
	found bool
}

func (r *ranking) offer(key string, score int) {
	if !r.found || score > r.score || (score == r.score && key < r.key) {
		r.key, r.score, r.found = key, score, true
	}
}

func (r *ranking) result() (string, bool) {
	return r.key, r.found
}
