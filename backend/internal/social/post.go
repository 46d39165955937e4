package social

import "time"

// Post is an immutable message owned by exactly one person
type Post struct {
	serial    uint64
	author    string
	message   string
	timestamp time.Time
}

func (p *Post) view() PostView {
	return PostView{
		ID:        formatPostID(p.serial),
		Author:    p.author,
		Message:   p.message,
		Timestamp: p.timestamp,
	}
}
