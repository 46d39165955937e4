package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"socialgraph/backend/internal/social"
)

func TestCollector_ObservesGraph(t *testing.T) {
	c := NewCollector("test")
	g := social.New(social.WithObserver(c))

	require.NoError(t, g.RegisterPerson("alice", "Alice", "A"))
	require.NoError(t, g.RegisterPerson("bob", "Bob", "B"))
	require.Error(t, g.RegisterPerson("bob", "Bob", "B"))
	_, err := g.AddFriendship("alice", "bob")
	require.NoError(t, err)
	_, err = g.Post("alice", "hello")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Persons))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Posts))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Friendships))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Operations.WithLabelValues("register_person", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Operations.WithLabelValues("register_person", "error")))
}

func TestCollector_IndependentRegistries(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.ObserveFriendship()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.Friendships))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Friendships))

	count, err := testutil.GatherAndCount(a.Registry(), "test_friendships_created_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = testutil.GatherAndCompare(b.Registry(), strings.NewReader(`
# HELP test_friendships_created_total Total number of friendship edges created
# TYPE test_friendships_created_total counter
test_friendships_created_total 0
`), "test_friendships_created_total")
	assert.NoError(t, err)
}

func TestCollector_Handler(t *testing.T) {
	c := NewCollector("socialgraph")
	c.ObserveHTTP(http.MethodGet, "/health", http.StatusOK, 5*time.Millisecond)
	c.ObserveExport(time.Second, errors.New("breaker open"))

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "socialgraph_http_requests_total"))
	assert.True(t, strings.Contains(body, `socialgraph_export_duration_seconds_count{status="error"} 1`))
}
