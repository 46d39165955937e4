package social

import (
	"container/heap"
	"math"
)

// FriendPosts returns one page of the merged post stream of author's friends,
// newest first. The author's own posts are not part of the feed.
func (g *Graph) FriendPosts(author string, page, size int) ([]FeedEntry, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(author)
	if err != nil {
		return nil, err
	}

	// Only the first page*size entries of the merge can land on the page
	limit := math.MaxInt
	if page <= math.MaxInt/size {
		limit = page * size
	}

	merged := g.mergeFriendPosts(p, limit)
	return paginate(merged, page, size), nil
}

// mergeFriendPosts k-way merges each friend's posts by descending serial and
// stops after limit entries; caller holds the lock.
func (g *Graph) mergeFriendPosts(p *Person, limit int) []FeedEntry {
	h := make(feedHeap, 0, len(p.friendOrder))
	for _, code := range p.friendOrder {
		friend := g.persons[code]
		if len(friend.postOrder) == 0 {
			continue
		}
		h = append(h, &feedCursor{person: friend, next: len(friend.postOrder) - 1})
	}
	heap.Init(&h)

	out := []FeedEntry{}
	for h.Len() > 0 && len(out) < limit {
		c := h[0]
		out = append(out, FeedEntry{
			Author: c.person.code,
			PostID: formatPostID(c.serial()),
		})
		c.next--
		if c.next < 0 {
			heap.Pop(&h)
		} else {
			heap.Fix(&h, 0)
		}
	}
	return out
}

// feedCursor walks one friend's posts from newest to oldest
type feedCursor struct {
	person *Person
	next   int // index into person.postOrder
}

func (c *feedCursor) serial() uint64 {
	return c.person.postOrder[c.next]
}

// feedHeap is a max-heap on the cursors' current serial
type feedHeap []*feedCursor

func (h feedHeap) Len() int           { return len(h) }
func (h feedHeap) Less(i, j int) bool { return h[i].serial() > h[j].serial() }
func (h feedHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *feedHeap) Push(x any) {
	*h = append(*h, x.(*feedCursor))
}

func (h *feedHeap) Pop() any {
	old := *h
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return c
}
