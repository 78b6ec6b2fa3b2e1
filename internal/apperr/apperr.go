// Package apperr defines the service error taxonomy and its mapping to the
// gRPC codes reported to callers.
package apperr

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gfilippi/salesvc/internal/tokens"
)

var (
	// ErrBadRequest marks a request missing required sub-fields. Rejected
	// before any cryptographic or backend work.
	ErrBadRequest = errors.New("invalid request")

	// ErrUnexpectedBackendResponse marks a downstream success that violates
	// its contract, e.g. a price estimation carrying no price.
	ErrUnexpectedBackendResponse = errors.New("unexpected backend response")

	// ErrBackendUnavailable marks a transport failure reaching a downstream.
	ErrBackendUnavailable = errors.New("backend unavailable")
)

// Unexpected wraps a contract violation with context for the server-side log.
func Unexpected(detail string) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedBackendResponse, detail)
}

// Kind names the error class for log fields.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, tokens.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, tokens.ErrExpired):
		return "expired_offer"
	case errors.Is(err, ErrBadRequest):
		return "bad_request"
	case errors.Is(err, ErrUnexpectedBackendResponse):
		return "unexpected_backend_response"
	case errors.Is(err, ErrBackendUnavailable):
		return "backend_unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "internal"
	}
}

// GRPCStatus maps a service error to the status surfaced to the caller.
// Caller-triggerable failures (shape, signature, expiry) map to
// InvalidArgument and are not logged as errors. Contract violations are
// logged with full detail server-side and surface only as an opaque
// internal error. Downstream status codes pass through where meaningful.
func GRPCStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tokens.ErrInvalidSignature), errors.Is(err, tokens.ErrExpired):
		return status.Error(codes.InvalidArgument, "offer is invalid")
	case errors.Is(err, ErrBadRequest):
		return status.Error(codes.InvalidArgument, "invalid request")
	case errors.Is(err, ErrUnexpectedBackendResponse):
		log.Error().Err(err).Str("kind", Kind(err)).Msg("backend contract violation")
		return status.Error(codes.Internal, "internal error")
	case errors.Is(err, ErrBackendUnavailable):
		log.Warn().Err(err).Msg("backend unreachable")
		return status.Error(codes.Unavailable, "backend unavailable")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.NotFound, codes.InvalidArgument, codes.FailedPrecondition,
			codes.ResourceExhausted, codes.Unavailable, codes.DeadlineExceeded:
			return st.Err()
		}
	}

	log.Error().Err(err).Msg("internal error")
	return status.Error(codes.Internal, "internal error")
}
