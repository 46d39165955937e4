package social

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"socialgraph/backend/internal/constants"
	apperrors "socialgraph/backend/pkg/errors"
	"socialgraph/backend/pkg/logger"
)

// Observer is notified after every mutating operation. The metrics collector
// implements it; the default is a no-op.
type Observer interface {
	ObserveOperation(op string, err error)
	ObserveSize(persons, groups, posts int)
	ObserveFriendship()
}

type nopObserver struct{}

func (nopObserver) ObserveOperation(string, error) {}
func (nopObserver) ObserveSize(int, int, int)      {}
func (nopObserver) ObserveFriendship()             {}

// Friendship is an undirected edge, recorded in creation order
type Friendship struct {
	A string `json:"a"`
	B string `json:"b"`
}

// Graph owns every person and group and is the single entry point for
// mutations and queries. All methods are safe for concurrent use.
type Graph struct {
	mu sync.RWMutex

	persons     map[string]*Person
	groups      map[string]*Group
	friendships []Friendship
	postCount   int
	nextSerial  uint64

	clock    func() time.Time
	logger   *zap.Logger
	observer Observer
}

// Option configures a Graph
type Option func(*Graph)

// WithClock sets the clock used by Post
func WithClock(clock func() time.Time) Option {
	return func(g *Graph) {
		g.clock = clock
	}
}

// WithLogger overrides the component logger
func WithLogger(log *zap.Logger) Option {
	return func(g *Graph) {
		g.logger = log
	}
}

// WithObserver attaches an operation observer
func WithObserver(observer Observer) Option {
	return func(g *Graph) {
		g.observer = observer
	}
}

// New creates an empty graph
func New(opts ...Option) *Graph {
	g := &Graph{
		persons:    make(map[string]*Person),
		groups:     make(map[string]*Group),
		nextSerial: constants.FirstPostSerial,
		clock:      time.Now,
		logger:     logger.Named("social"),
		observer:   nopObserver{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterPerson creates a person with no friends and no posts
func (g *Graph) RegisterPerson(code, name, surname string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.persons[code]; exists {
		err := apperrors.NewDuplicateIdentifier(apperrors.KindPerson, code)
		g.done(constants.OpRegisterPerson, err)
		return err
	}

	g.persons[code] = newPerson(code, name, surname)
	g.logger.Debug("Person registered", zap.String("code", code))
	g.done(constants.OpRegisterPerson, nil)
	return nil
}

// PersonInfo returns "name surname" for a registered code
func (g *Graph) PersonInfo(code string) (string, error) {
	view, err := g.Person(code)
	if err != nil {
		return "", err
	}
	return view.Info(), nil
}

// Person returns a read-only view of a registered person
func (g *Graph) Person(code string) (PersonView, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, err := g.person(code)
	if err != nil {
		return PersonView{}, err
	}
	return p.view(), nil
}

// Persons lists every registered code in ascending order
func (g *Graph) Persons() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.persons)
}

// Stats returns the registry sizes
func (g *Graph) Stats() (persons, groups, posts, friendships int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.persons), len(g.groups), g.postCount, len(g.friendships)
}

// person looks up a code; caller holds the lock
func (g *Graph) person(code string) (*Person, error) {
	p, ok := g.persons[code]
	if !ok {
		return nil, apperrors.NewUnknownIdentifier(apperrors.KindPerson, code)
	}
	return p, nil
}

// group looks up a name; caller holds the lock
func (g *Graph) group(name string) (*Group, error) {
	grp, ok := g.groups[name]
	if !ok {
		return nil, apperrors.NewUnknownIdentifier(apperrors.KindGroup, name)
	}
	return grp, nil
}

// done reports a finished mutation; caller holds the write lock
func (g *Graph) done(op string, err error) {
	g.observer.ObserveOperation(op, err)
	if err == nil {
		g.observer.ObserveSize(len(g.persons), len(g.groups), g.postCount)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
