package gateway

import (
	"errors"
	"net/http"

	cartapp "github.com/HamsavardhanS/Zyno-Sample/internal/cart/app"
	cartdomain "github.com/HamsavardhanS/Zyno-Sample/internal/cart/domain"
	catalogapp "github.com/HamsavardhanS/Zyno-Sample/internal/catalog/app"
	checkoutapp "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/app"
	checkoutdomain "github.com/HamsavardhanS/Zyno-Sample/internal/checkout/domain"
	orderapp "github.com/HamsavardhanS/Zyno-Sample/internal/order/app"
	paymentapp "github.com/HamsavardhanS/Zyno-Sample/internal/payment/app"
	paymentdomain "github.com/HamsavardhanS/Zyno-Sample/internal/payment/domain"
	wishlistapp "github.com/HamsavardhanS/Zyno-Sample/internal/wishlist/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapErr classifies an application error into a status code. Anything not
// recognised is reported as internal without leaking its text.
func mapErr(err error) error {
	var verr *checkoutapp.ValidationError
	var perr *paymentdomain.PayloadError

	switch {
	case errors.As(err, &verr), errors.As(err, &perr),
		errors.Is(err, catalogapp.ErrInvalidInput),
		errors.Is(err, cartapp.ErrInvalidInput),
		errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, wishlistapp.ErrInvalidInput),
		errors.Is(err, checkoutapp.ErrInvalidInput),
		errors.Is(err, orderapp.ErrInvalidInput),
		errors.Is(err, paymentapp.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())

	case errors.Is(err, catalogapp.ErrNotFound),
		errors.Is(err, orderapp.ErrNotFound),
		errors.Is(err, paymentapp.ErrNoSession),
		errors.Is(err, checkoutdomain.ErrNoPendingOrder):
		return status.Error(codes.NotFound, err.Error())

	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, checkoutapp.ErrUnavailable),
		errors.Is(err, cartapp.ErrOutOfStock),
		errors.Is(err, cartapp.ErrBadVariant),
		errors.Is(err, wishlistapp.ErrNotInWishlist),
		errors.Is(err, paymentapp.ErrMissingOrder),
		errors.Is(err, paymentapp.ErrSessionExpired),
		errors.Is(err, paymentapp.ErrInvalidState),
		errors.Is(err, paymentapp.ErrPaymentDeclined):
		return status.Error(codes.FailedPrecondition, err.Error())

	case errors.Is(err, orderapp.ErrAlreadyRecorded):
		return status.Error(codes.AlreadyExists, err.Error())
	}
	return status.Error(codes.Internal, "internal error")
}

// httpStatusFromGRPC maps a status error to an HTTP status, a stable error
// code and the message to show.
func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.FailedPrecondition:
		return http.StatusConflict, "FAILED_PRECONDITION", st.Message()
	case codes.AlreadyExists:
		return http.StatusConflict, "ALREADY_EXISTS", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", st.Message()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
