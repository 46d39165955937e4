package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_Error(t *testing.T) {
	plain := NewBaseError(ErrorTypeSocial, "person not found: zzz", nil)
	assert.Equal(t, "[social] person not found: zzz", plain.Error())

	wrapped := NewBaseError(ErrorTypeGraph, "export failed", fmt.Errorf("connection reset"))
	assert.Equal(t, "[graph] export failed: connection reset", wrapped.Error())
	assert.EqualError(t, wrapped.Unwrap(), "connection reset")
}

func TestKindHelpers(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		unknown   bool
		duplicate bool
		notFound  bool
		paging    bool
		errType   ErrorType
	}{
		{"unknown person", NewUnknownIdentifier(KindPerson, "zzz"), true, false, false, false, ErrorTypeSocial},
		{"duplicate person", NewDuplicateIdentifier(KindPerson, "alice"), false, true, false, false, ErrorTypeSocial},
		{"post not found", NewPostNotFound("alice", "7"), false, false, true, false, ErrorTypeSocial},
		{"invalid pagination", NewInvalidPagination(0, 10), false, false, false, true, ErrorTypeValidation},
		{"self friendship", NewInvalidFriendship("alice"), false, false, false, false, ErrorTypeValidation},
		{"wrapped unknown", fmt.Errorf("lookup: %w", NewUnknownIdentifier(KindGroup, "G")), true, false, false, false, ErrorTypeSocial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unknown, IsUnknownIdentifier(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicateIdentifier(tt.err))
			assert.Equal(t, tt.notFound, IsPostNotFound(tt.err))
			assert.Equal(t, tt.paging, IsInvalidPagination(tt.err))
			assert.True(t, IsErrorType(tt.err, tt.errType))
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(NewGraphQueryFailed("MERGE", fmt.Errorf("timeout"))))
	assert.False(t, IsRetryable(NewUnknownIdentifier(KindPerson, "zzz")))
	assert.False(t, IsRetryable(fmt.Errorf("plain")))
}

func TestInvalidSnapshot(t *testing.T) {
	err := fmt.Errorf("restore: %w", NewInvalidSnapshot("duplicate post serial 3"))

	assert.True(t, IsInvalidSnapshot(err))
	assert.True(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsRetryable(err))
	assert.Contains(t, err.Error(), "invalid snapshot: duplicate post serial 3")
	assert.False(t, IsInvalidSnapshot(NewInvalidPagination(0, 1)))
}
