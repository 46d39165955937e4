package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"socialgraph/backend/internal/metrics"
	"socialgraph/backend/internal/social"
)

// RequestIDHeader carries the per-request id
const RequestIDHeader = "X-Request-ID"

// Options configures the router
type Options struct {
	DefaultPageSize int
	MaxPageSize     int
	Metrics         *metrics.Collector
	Logger          *zap.Logger
}

// NewRouter builds the gin engine exposing the social graph
func NewRouter(graph *social.Graph, opts Options) *gin.Engine {
	h := &Handlers{
		graph:           graph,
		defaultPageSize: opts.DefaultPageSize,
		maxPageSize:     opts.MaxPageSize,
		logger:          opts.Logger,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(requestID())
	router.Use(requestLogger(h.logger, opts.Metrics))
	router.Use(gin.Recovery())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	api := router.Group("/api")
	{
		api.POST("/persons", h.RegisterPerson)
		api.GET("/persons", h.ListPersons)
		api.GET("/persons/:code", h.GetPerson)
		api.GET("/persons/:code/friends", h.ListFriends)
		api.GET("/persons/:code/friends-of-friends", h.FriendsOfFriends)
		api.POST("/persons/:code/posts", h.CreatePost)
		api.GET("/persons/:code/posts", h.UserPosts)
		api.GET("/persons/:code/posts/:id", h.GetPost)
		api.GET("/persons/:code/feed", h.FriendPosts)

		api.POST("/friendships", h.AddFriendship)

		api.POST("/groups", h.CreateGroup)
		api.GET("/groups", h.ListGroups)
		api.POST("/groups/:name/members", h.AddPersonToGroup)
		api.GET("/groups/:name/members", h.ListGroupMembers)

		api.GET("/rankings/:ranking", h.Ranking)
	}

	return router
}

// requestID tags every request with an id, reusing the caller's when present
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// requestLogger logs and measures every request
func requestLogger(log *zap.Logger, collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("request_id", c.GetString("request_id")),
		)

		if collector != nil {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			collector.ObserveHTTP(c.Request.Method, route, status, latency)
		}
	}
}
