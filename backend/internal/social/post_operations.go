package social

import (
	"time"

	"go.uber.org/zap"
	"socialgraph/backend/internal/constants"
	apperrors "socialgraph/backend/pkg/errors"
)

// ============================================================================
// Post Operations
// ============================================================================

// CreatePost stores a post under author with the given timestamp and returns
// its id. Ids come from one counter per graph, so they are unique across
// authors and increase with creation order.
func (g *Graph) CreatePost(author, text string, at time.Time) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, err := g.person(author)
	if err != nil {
		g.done(constants.OpCreatePost, err)
		return "", err
	}

	post := &Post{
		serial:    g.nextSerial,
		author:    author,
		message:   text,
		timestamp: at,
	}
	g.nextSerial++
	g.postCount++
	p.addPost(post)

	g.logger.Debug("Post created",
		zap.String("author", author),
		zap.Uint64("serial", post.serial),
	)
	g.done(constants.OpCreatePost, nil)
	return formatPostID(post.serial), nil
}

// Post stores a post stamped with the graph clock
func (g *Graph) Post(author, text string) (string, error) {
	return g.CreatePost(author, text, g.clock())
}

// PostContent returns the message of one of author's posts
func (g *Graph) PostContent(author, postID string) (string, error) {
	view, err := g.GetPost(author, postID)
	if err != nil {
		return "", err
	}
	return view.Message, nil
}

// PostTimestamp returns the creation time of one of author's posts
func (g *Graph) PostTimestamp(author, postID string) (time.Time, error) {
	view, err := g.GetPost(author, postID)
	if err != nil {
		return time.Time{}, err
	}
	return view.Timestamp, nil
}

// GetPost returns a copy of one of author's posts. An unknown author is an
// ErrUnknownIdentifier; an id that is malformed or owned by someone else is an
// ErrPostNotFound.
func (g *Graph) GetPost(author, postID string) (PostView, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(author)
	if err != nil {
		return PostView{}, err
	}
	serial, ok := parsePostID(postID)
	if !ok {
		return PostView{}, apperrors.NewPostNotFound(author, postID)
	}
	post, ok := p.post(serial)
	if !ok {
		return PostView{}, apperrors.NewPostNotFound(author, postID)
	}
	return post.view(), nil
}

// UserPosts returns one page of author's post ids, newest first
func (g *Graph) UserPosts(author string, page, size int) ([]string, error) {
	if err := validatePage(page, size); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(author)
	if err != nil {
		return nil, err
	}

	// postOrder is ascending, so page k counts back from the end
	n := len(p.postOrder)
	start, end := pageBounds(n, page, size)
	ids := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		ids = append(ids, formatPostID(p.postOrder[n-1-i]))
	}
	return ids, nil
}
