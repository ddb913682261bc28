package handlers

import (
	"context"
	"errors"
	"net/http"

	"marketplace_escrow/internal/usecase"
	"marketplace_escrow/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidNeedPayload    = pkg.NewDomainErrorSimple("INVALID_NEED_INPUT", "Invalid need payload", http.StatusBadRequest)
	errInvalidOfferPayload   = pkg.NewDomainErrorSimple("INVALID_OFFER_INPUT", "Invalid offer payload", http.StatusBadRequest)
	errInvalidOrderPayload   = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	errInvalidDisputePayload = pkg.NewDomainErrorSimple("INVALID_DISPUTE_INPUT", "Invalid dispute payload", http.StatusBadRequest)
	errInvalidQuery          = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid query parameters", http.StatusBadRequest)
)

func mapError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNeedNotFound):
		return pkg.NewDomainErrorSimple("NEED_NOT_FOUND", "Need not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDisputeNotFound):
		return pkg.NewDomainErrorSimple("DISPUTE_NOT_FOUND", "Dispute not found", http.StatusNotFound)

	case errors.Is(err, usecase.ErrInvalidID),
		errors.Is(err, usecase.ErrInvalidNeedTitle),
		errors.Is(err, usecase.ErrInvalidNeedCategory),
		errors.Is(err, usecase.ErrInvalidBudget),
		errors.Is(err, usecase.ErrInvalidNeedStatus),
		errors.Is(err, usecase.ErrInvalidOfferPrice),
		errors.Is(err, usecase.ErrInvalidCounterAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidOrderRole),
		errors.Is(err, usecase.ErrInvalidDisputeReason),
		errors.Is(err, usecase.ErrInvalidDisputeOutcome):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)

	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed for this user", http.StatusForbidden)

	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrNeedNotOpen),
		errors.Is(err, usecase.ErrOfferNotPending),
		errors.Is(err, usecase.ErrNeedHasAcceptedOffer),
		errors.Is(err, usecase.ErrOfferNotAccepted),
		errors.Is(err, usecase.ErrCannotCounterCounter),
		errors.Is(err, usecase.ErrDisputeNotPending):
		return pkg.NewDomainErrorSimple("INVALID_STATE", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderCreationInProgress):
		return pkg.NewDomainErrorSimple("ORDER_CREATION_IN_PROGRESS", "Order creation already in progress for this offer", http.StatusConflict)
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Resource was modified concurrently, retry the request", http.StatusConflict)

	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainErrorSimple("PAYMENT_DECLINED", "Payment was declined", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_UNAVAILABLE", "Payment could not be processed", err, http.StatusPaymentRequired)

	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "The request took too long to complete", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
