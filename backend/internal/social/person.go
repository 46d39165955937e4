package social

// Person owns its friend set and its posts. Friends are stored by code so
// persons never hold pointers to each other.
type Person struct {
	code    string
	name    string
	surname string

	friends     map[string]struct{}
	friendOrder []string

	posts     map[uint64]*Post
	postOrder []uint64 // ascending serial, i.e. creation order
}

func newPerson(code, name, surname string) *Person {
	return &Person{
		code:    code,
		name:    name,
		surname: surname,
		friends: make(map[string]struct{}),
		posts:   make(map[uint64]*Post),
	}
}

// friendCount is the cached degree; it always equals len(friends)
func (p *Person) friendCount() int {
	return len(p.friendOrder)
}

func (p *Person) isFriend(code string) bool {
	_, ok := p.friends[code]
	return ok
}

// addFriend reports false when code was already a friend
func (p *Person) addFriend(code string) bool {
	if p.isFriend(code) {
		return false
	}
	p.friends[code] = struct{}{}
	p.friendOrder = append(p.friendOrder, code)
	return true
}

func (p *Person) friendCodes() []string {
	out := make([]string, len(p.friendOrder))
	copy(out, p.friendOrder)
	return out
}

// addPost expects serials to arrive in increasing order
func (p *Person) addPost(post *Post) {
	p.posts[post.serial] = post
	p.postOrder = append(p.postOrder, post.serial)
}

func (p *Person) post(serial uint64) (*Post, bool) {
	post, ok := p.posts[serial]
	return post, ok
}

// postsNewestFirst returns the person's posts by descending serial
func (p *Person) postsNewestFirst() []*Post {
	out := make([]*Post, 0, len(p.postOrder))
	for i := len(p.postOrder) - 1; i >= 0; i-- {
		out = append(out, p.posts[p.postOrder[i]])
	}
	return out
}

func (p *Person) view() PersonView {
	return PersonView{
		Code:        p.code,
		Name:        p.name,
		Surname:     p.surname,
		FriendCount: p.friendCount(),
		PostCount:   len(p.postOrder),
	}
}
