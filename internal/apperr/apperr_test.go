package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gfilippi/salesvc/internal/tokens"
)

func TestKind(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid signature", tokens.ErrInvalidSignature, "invalid_signature"},
		{"expired", tokens.ErrExpired, "expired_offer"},
		{"bad request", ErrBadRequest, "bad_request"},
		{"contract violation", Unexpected("no price"), "unexpected_backend_response"},
		{"unavailable", ErrBackendUnavailable, "backend_unavailable"},
		{"timeout", context.DeadlineExceeded, "timeout"},
		{"canceled", context.Canceled, "canceled"},
		{"unknown", errors.New("boom"), "internal"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Kind(tc.err))
		})
	}
}

func TestGRPCStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode codes.Code
		wantMsg  string
	}{
		{"invalid signature", tokens.ErrInvalidSignature, codes.InvalidArgument, "offer is invalid"},
		{"expired", tokens.ErrExpired, codes.InvalidArgument, "offer is invalid"},
		{"bad request", ErrBadRequest, codes.InvalidArgument, "invalid request"},
		{"contract violation", Unexpected("price missing"), codes.Internal, "internal error"},
		{"unavailable", ErrBackendUnavailable, codes.Unavailable, "backend unavailable"},
		{"canceled request", context.Canceled, codes.Canceled, "request canceled"},
		{"deadline exceeded", context.DeadlineExceeded, codes.DeadlineExceeded, "deadline exceeded"},
		{"wrapped cancellation", fmt.Errorf("call priceest: %w", context.Canceled), codes.Canceled, "request canceled"},
		{"opaque internal", errors.New("boom"), codes.Internal, "internal error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := GRPCStatus(tc.err)
			st, ok := status.FromError(err)
			require.True(t, ok)
			assert.Equal(t, tc.wantCode, st.Code())
			assert.Equal(t, tc.wantMsg, st.Message())
		})
	}
}

func TestGRPCStatus_DownstreamCodePassesThrough(t *testing.T) {
	downstream := status.Error(codes.NotFound, "flight not found")

	err := GRPCStatus(downstream)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "flight not found", st.Message())
}

func TestGRPCStatus_DownstreamUnknownIsGeneralized(t *testing.T) {
	downstream := status.Error(codes.Unknown, "stack trace with secrets")

	err := GRPCStatus(downstream)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal error", st.Message())
}

func TestGRPCStatus_Nil(t *testing.T) {
	assert.NoError(t, GRPCStatus(nil))
}
