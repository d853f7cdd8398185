package server

import (
	"context"
	"errors"
	"strconv"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"pouringat.com/PouringAt/pkg/auth"
	"pouringat.com/PouringAt/pkg/geocode"
	"pouringat.com/PouringAt/pkg/repository"
	"pouringat.com/PouringAt/pkg/search"
)

var (
	ErrInvalidInput    = errors.New("bad request")
	ErrInvalidPostcode = errors.New("invalid postcode")
	ErrReservedSlug    = errors.New("reserved slug")
	ErrInternal        = errors.New("internal error")
)

// ToConnectError maps domain errors to Connect error codes. Errors it does not know are logged
// and reported as Internal without their message.
func ToConnectError(err error, procedure string, logger *zap.Logger) error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, geocode.ErrInvalidAddress):
		// provider errors may carry request details, so only the sentinel reaches the caller
		return connect.NewError(connect.CodeInvalidArgument, geocode.ErrInvalidAddress)
	case errors.Is(err, ErrInvalidPostcode),
		errors.Is(err, ErrReservedSlug),
		errors.Is(err, ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrDuplicateSlug), errors.Is(err, repository.ErrAlreadyOnTap):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, repository.ErrVenueNotFound), errors.Is(err, repository.ErrListingNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, auth.ErrUnauthenticated):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, auth.ErrForbidden):
		return connect.NewError(connect.CodePermissionDenied, err)
	case errors.Is(err, search.ErrRateLimited):
		limited := connect.NewError(connect.CodeResourceExhausted, search.ErrRateLimited)

		var limitErr *search.RateLimitError
		if errors.As(err, &limitErr) {
			limited.Meta().Set("Retry-After", strconv.Itoa(int(limitErr.RetryAfter.Seconds()+0.5)))
		}

		return limited
	default:
		logger.Error("request failed", zap.String("procedure", procedure), zap.Error(err))

		return connect.NewError(connect.CodeInternal, ErrInternal)
	}
}

// NewErrorInterceptor converts every handler error with ToConnectError.
func NewErrorInterceptor(logger *zap.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			response, err := next(ctx, req)
			if err != nil {
				return nil, ToConnectError(err, req.Spec().Procedure, logger)
			}

			return response, nil
		}
	}
}
