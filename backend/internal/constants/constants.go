package constants

// Pagination constants
const (
	// FirstPage is the lowest valid page number
	FirstPage = 1
	// DefaultPageSize is the DEFAULT_PAGE_SIZE fallback
	DefaultPageSize = 10
	// MaxPageSize is the MAX_PAGE_SIZE fallback
	MaxPageSize = 100
)

// Post constants
const (
	// FirstPostSerial is the serial assigned to the first post of a fresh graph
	FirstPostSerial uint64 = 0
	// FeedKeySeparator joins author code and post id in friend feed keys
	FeedKeySeparator = ":"
)

// Metrics constants
const (
	// MetricsNamespace prefixes every exported Prometheus metric
	MetricsNamespace = "socialgraph"
)

// Operation names used in logs and metrics
const (
	OpRegisterPerson   = "register_person"
	OpAddFriendship    = "add_friendship"
	OpCreateGroup      = "create_group"
	OpAddPersonToGroup = "add_person_to_group"
	OpCreatePost       = "create_post"
	OpExportSnapshot   = "export_snapshot"
)
