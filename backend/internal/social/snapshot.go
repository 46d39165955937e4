package social

import (
	"fmt"
	"sort"
	"time"

	apperrors "socialgraph/backend/pkg/errors"
)

// Snapshot is a self-contained copy of a graph's state. Restoring it yields a
// graph that answers every query identically and continues the post serials.
type Snapshot struct {
	Persons     []PersonRecord `json:"persons"`
	Friendships []Friendship   `json:"friendships"`
	Groups      []GroupRecord  `json:"groups"`
	Posts       []PostRecord   `json:"posts"`
	NextSerial  uint64         `json:"next_serial"`
}

// PersonRecord is a person's identity in a snapshot
type PersonRecord struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

// GroupRecord is a group with its members in join order
type GroupRecord struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// PostRecord is a single post in a snapshot
type PostRecord struct {
	Serial    uint64    `json:"serial"`
	Author    string    `json:"author"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Snapshot copies the current state under the read lock
func (g *Graph) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{
		Persons:     make([]PersonRecord, 0, len(g.persons)),
		Friendships: make([]Friendship, len(g.friendships)),
		Groups:      make([]GroupRecord, 0, len(g.groups)),
		Posts:       make([]PostRecord, 0, g.postCount),
		NextSerial:  g.nextSerial,
	}
	copy(snap.Friendships, g.friendships)

	for _, code := range sortedKeys(g.persons) {
		p := g.persons[code]
		snap.Persons = append(snap.Persons, PersonRecord{Code: p.code, Name: p.name, Surname: p.surname})
		for _, serial := range p.postOrder {
			post := p.posts[serial]
			snap.Posts = append(snap.Posts, PostRecord{
				Serial:    post.serial,
				Author:    post.author,
				Message:   post.message,
				Timestamp: post.timestamp,
			})
		}
	}
	sort.Slice(snap.Posts, func(i, j int) bool { return snap.Posts[i].Serial < snap.Posts[j].Serial })

	for _, name := range sortedKeys(g.groups) {
		snap.Groups = append(snap.Groups, GroupRecord{Name: name, Members: g.groups[name].memberCodes()})
	}
	return snap
}

// Restore builds a new graph from a snapshot. References to unknown persons,
// duplicate identifiers and serials at or above NextSerial are rejected.
func Restore(snap Snapshot, opts ...Option) (*Graph, error) {
	g := New(opts...)

	for _, rec := range snap.Persons {
		if _, exists := g.persons[rec.Code]; exists {
			return nil, apperrors.NewDuplicateIdentifier(apperrors.KindPerson, rec.Code)
		}
		g.persons[rec.Code] = newPerson(rec.Code, rec.Name, rec.Surname)
	}

	for _, f := range snap.Friendships {
		a, err := g.person(f.A)
		if err != nil {
			return nil, err
		}
		b, err := g.person(f.B)
		if err != nil {
			return nil, err
		}
		if f.A == f.B {
			return nil, apperrors.NewInvalidFriendship(f.A)
		}
		if a.addFriend(f.B) {
			b.addFriend(f.A)
			g.friendships = append(g.friendships, f)
		}
	}

	for _, rec := range snap.Groups {
		if _, exists := g.groups[rec.Name]; exists {
			return nil, apperrors.NewDuplicateIdentifier(apperrors.KindGroup, rec.Name)
		}
		grp := newGroup(rec.Name)
		for _, code := range rec.Members {
			if _, err := g.person(code); err != nil {
				return nil, err
			}
			grp.addMember(code)
		}
		g.groups[rec.Name] = grp
	}

	posts := make([]PostRecord, len(snap.Posts))
	copy(posts, snap.Posts)
	sort.Slice(posts, func(i, j int) bool { return posts[i].Serial < posts[j].Serial })
	for i, rec := range posts {
		if i > 0 && posts[i-1].Serial == rec.Serial {
			return nil, apperrors.NewInvalidSnapshot(fmt.Sprintf("duplicate post serial %d", rec.Serial))
		}
		if rec.Serial >= snap.NextSerial {
			return nil, apperrors.NewInvalidSnapshot(fmt.Sprintf("post serial %d not below next serial %d", rec.Serial, snap.NextSerial))
		}
		p, err := g.person(rec.Author)
		if err != nil {
			return nil, err
		}
		p.addPost(&Post{serial: rec.Serial, author: rec.Author, message: rec.Message, timestamp: rec.Timestamp})
		g.postCount++
	}
	g.nextSerial = snap.NextSerial

	g.observer.ObserveSize(len(g.persons), len(g.groups), g.postCount)
	return g, nil
}
