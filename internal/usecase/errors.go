package usecase

import "errors"

var (
	ErrNeedNotFound    = errors.New("need not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrDisputeNotFound = errors.New("dispute not found")
)

var (
	ErrInvalidID             = errors.New("invalid id")
	ErrInvalidNeedTitle      = errors.New("invalid need title")
	ErrInvalidNeedCategory   = errors.New("invalid need category")
	ErrInvalidBudget         = errors.New("invalid budget range")
	ErrInvalidNeedStatus     = errors.New("invalid need status")
	ErrInvalidOfferPrice     = errors.New("offer price must be positive with at most two decimals")
	ErrInvalidCounterAmount  = errors.New("counter amount must be positive, lower than the offer price and have at most two decimals")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidOrderStatus    = errors.New("invalid order status")
	ErrInvalidOrderRole      = errors.New("invalid order role")
	ErrInvalidDisputeReason  = errors.New("invalid dispute reason")
	ErrInvalidDisputeOutcome = errors.New("invalid dispute outcome")
)

var ErrForbidden = errors.New("operation not allowed for this user")

var (
	ErrIllegalTransition       = errors.New("illegal status transition")
	ErrNeedNotOpen             = errors.New("need is not open")
	ErrOfferNotPending         = errors.New("offer is not pending")
	ErrNeedHasAcceptedOffer    = errors.New("need already has an accepted offer")
	ErrOfferNotAccepted        = errors.New("offer not accepted")
	ErrCannotCounterCounter    = errors.New("counter-offers cannot be countered")
	ErrOrderCreationInProgress = errors.New("order creation already in progress for this offer")
	ErrDisputeNotPending       = errors.New("dispute is not pending")
	ErrConcurrentUpdate        = errors.New("resource was modified concurrently")
)

var (
	ErrPaymentDeclined           = errors.New("payment declined")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)
