package social

import (
	"socialgraph/backend/internal/constants"
	apperrors "socialgraph/backend/pkg/errors"
)

// validatePage rejects pages below 1 and non-positive sizes
func validatePage(page, size int) error {
	if page < constants.FirstPage || size <= 0 {
		return apperrors.NewInvalidPagination(page, size)
	}
	return nil
}

// pageBounds returns the [start, end) window of a 1-indexed page over n items.
// A page past the end yields an empty window.
func pageBounds(n, page, size int) (int, int) {
	if page-1 > n/size {
		return n, n
	}
	start := (page - 1) * size
	if start >= n {
		return n, n
	}
	end := start + size
	if end > n || end < start {
		end = n
	}
	return start, end
}

func paginate[T any](items []T, page, size int) []T {
	start, end := pageBounds(len(items), page, size)
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
