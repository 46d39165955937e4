package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"socialgraph/backend/internal/social"
)

// Handlers adapts the social graph to HTTP
type Handlers struct {
	graph           *social.Graph
	defaultPageSize int
	maxPageSize     int
	logger          *zap.Logger
}

type registerPersonRequest struct {
	Code    string `json:"code" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Surname string `json:"surname" binding:"required"`
}

type friendshipRequest struct {
	A string `json:"a" binding:"required"`
	B string `json:"b" binding:"required"`
}

type groupRequest struct {
	Name string `json:"name" binding:"required"`
}

type memberRequest struct {
	Code string `json:"code" binding:"required"`
}

type postRequest struct {
	Text      string     `json:"text" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
}

// RegisterPerson handles POST /api/persons
func (h *Handlers) RegisterPerson(c *gin.Context) {
	var req registerPersonRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := h.graph.RegisterPerson(req.Code, req.Name, req.Surname); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": req.Code})
}

// ListPersons handles GET /api/persons
func (h *Handlers) ListPersons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"persons": h.graph.Persons()})
}

// GetPerson handles GET /api/persons/:code
func (h *Handlers) GetPerson(c *gin.Context) {
	view, err := h.graph.Person(c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"code":         view.Code,
		"name":         view.Name,
		"surname":      view.Surname,
		"friend_count": view.FriendCount,
		"post_count":   view.PostCount,
		"info":         view.Info(),
	})
}

// AddFriendship handles POST /api/friendships
func (h *Handlers) AddFriendship(c *gin.Context) {
	var req friendshipRequest
	if !bindJSON(c, &req) {
		return
	}
	created, err := h.graph.AddFriendship(req.A, req.B)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}

// ListFriends handles GET /api/persons/:code/friends
func (h *Handlers) ListFriends(c *gin.Context) {
	friends, err := h.graph.ListFriends(c.Param("code"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends": friends})
}

// FriendsOfFriends handles GET /api/persons/:code/friends-of-friends?distinct=true
func (h *Handlers) FriendsOfFriends(c *gin.Context) {
	code := c.Param("code")
	distinct, _ := strconv.ParseBool(c.DefaultQuery("distinct", "false"))

	var (
		codes []string
		err   error
	)
	if distinct {
		codes, err = h.graph.FriendsOfFriendsDistinct(code)
	} else {
		codes, err = h.graph.FriendsOfFriends(code)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"friends_of_friends": codes, "distinct": distinct})
}

// CreateGroup handles POST /api/groups
func (h *Handlers) CreateGroup(c *gin.Context) {
	var req groupRequest
	if !bindJSON(c, &req) {
		return
	}
	created := h.graph.CreateGroup(req.Name)
	c.JSON(http.StatusOK, gin.H{"name": req.Name, "created": created})
}

// ListGroups handles GET /api/groups
func (h *Handlers) ListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.graph.ListGroups()})
}

// AddPersonToGroup handles POST /api/groups/:name/members
func (h *Handlers) AddPersonToGroup(c *gin.Context) {
	var req memberRequest
	if !bindJSON(c, &req) {
		return
	}
	added, err := h.graph.AddPersonToGroup(req.Code, c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"added": added, "already_member": !added})
}

// ListGroupMembers handles GET /api/groups/:name/members
func (h *Handlers) ListGroupMembers(c *gin.Context) {
	members, err := h.graph.ListGroupMembers(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// Ranking handles GET /api/rankings/:ranking
func (h *Handlers) Ranking(c *gin.Context) {
	queries := map[string]func() (string, bool){
		"most-friends":            h.graph.PersonWithMostFriends,
		"most-friends-of-friends": h.graph.PersonWithMostFriendsOfFriends,
		"largest-group":           h.graph.LargestGroup,
		"most-groups":             h.graph.PersonInMostGroups,
	}

	name := c.Param("ranking")
	query, ok := queries[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown ranking: " + name})
		return
	}
	winner, found := query()
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "no candidates", "ranking": name})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranking": name, "winner": winner})
}

// CreatePost handles POST /api/persons/:code/posts
func (h *Handlers) CreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req) {
		return
	}

	author := c.Param("code")
	var (
		id  string
		err error
	)
	if req.Timestamp != nil {
		id, err = h.graph.CreatePost(author, req.Text, *req.Timestamp)
	} else {
		id, err = h.graph.Post(author, req.Text)
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetPost handles GET /api/persons/:code/posts/:id
func (h *Handlers) GetPost(c *gin.Context) {
	post, err := h.graph.GetPost(c.Param("code"), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UserPosts handles GET /api/persons/:code/posts?page=&size=
func (h *Handlers) UserPosts(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}
	ids, err := h.graph.UserPosts(c.Param("code"), page, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"page": page, "size": size, "posts": ids})
}

// FriendPosts handles GET /api/persons/:code/feed?page=&size=
func (h *Handlers) FriendPosts(c *gin.Context) {
	page, size, ok := h.pageParams(c)
	if !ok {
		return
	}
	entries, err := h.graph.FriendPosts(c.Param("code"), page, size)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page":    page,
		"size":    size,
		"entries": entries,
		"keys":    social.FeedKeys(entries),
	})
}

// pageParams reads page and size, capping size at the configured maximum.
// Range checks are left to the graph so both layers agree on what is valid.
func (h *Handlers) pageParams(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be an integer"})
		return 0, 0, false
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(h.defaultPageSize)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "size must be an integer"})
		return 0, 0, false
	}
	if h.maxPageSize > 0 && size > h.maxPageSize {
		size = h.maxPageSize
	}
	return page, size, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}
