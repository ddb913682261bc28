package entities

import (
	"math"
	"time"
)

// OrderStatus represents the escrow lifecycle of an order.
//
//	payment_held -> in_progress -> delivered -> completed
//	                                         -> dispute_pending -> completed | cancelled
//	payment_held | in_progress -> cancelled
type OrderStatus string

const (
	OrderStatusPaymentHeld    OrderStatus = "payment_held"
	OrderStatusInProgress     OrderStatus = "in_progress"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCompleted      OrderStatus = "completed"
	OrderStatusDisputePending OrderStatus = "dispute_pending"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPaymentHeld:    {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress:     {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {OrderStatusCompleted, OrderStatusDisputePending},
	OrderStatusDisputePending: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:      {},
	OrderStatusCancelled:      {},
}

func (s OrderStatus) IsValid() bool {
	_, ok := orderTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PlatformFeeRate is the share of the order amount kept by the platform.
const PlatformFeeRate = 0.05

const OrderCreatedNote = "Payment received and held in escrow"

// CalculateFees splits amount into the platform fee and the seller earnings.
// The split is done in whole cents so fee + earnings == amount; callers only
// pass amounts accepted by HasWholeCents.
func CalculateFees(amount float64) (fee float64, earnings float64) {
	cents := toCents(amount)
	feeCents := int64(math.Round(float64(cents) * PlatformFeeRate))
	return float64(feeCents) / 100, float64(cents-feeCents) / 100
}

// HasWholeCents reports whether v has at most two decimal places.
func HasWholeCents(v float64) bool {
	scaled := v * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

// StatusChange is one entry of an order's audit trail.
type StatusChange struct {
	Status    OrderStatus `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Note      string      `json:"note"`
}

// Order is the escrow record created when an accepted offer is paid.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//   - GSI2 (seller_id-index): seller_id
//
// Need and offer fields are snapshots taken at payment time; later edits to
// the need or offer do not change them.
type Order struct {
	ID             string         `json:"id"`
	NeedID         string         `json:"needId"`
	OfferID        string         `json:"offerId"`
	NeedTitle      string         `json:"needTitle"`
	NeedCategory   string         `json:"needCategory"`
	OfferMessage   string         `json:"offerMessage"`
	DeliveryTime   string         `json:"deliveryTime"`
	Amount         float64        `json:"amount"`
	PlatformFee    float64        `json:"platformFee"`
	SellerEarnings float64        `json:"sellerEarnings"`
	BuyerID        string         `json:"buyerId"`
	BuyerName      string         `json:"buyerName"`
	BuyerEmail     string         `json:"buyerEmail"`
	SellerID       string         `json:"sellerId"`
	SellerName     string         `json:"sellerName"`
	SellerEmail    string         `json:"sellerEmail"`
	Status         OrderStatus    `json:"status"`
	WorkflowType   string         `json:"workflowType"`
	PaymentMethod  string         `json:"paymentMethod"`
	PaymentID      string         `json:"paymentId"`
	PaymentStatus  string         `json:"paymentStatus"`
	IdempotencyKey string         `json:"idempotencyKey"`
	StatusHistory  []StatusChange `json:"statusHistory"`
	DeliveredAt    *time.Time     `json:"deliveredAt"`
	CompletedAt    *time.Time     `json:"completedAt"`
	CancelledAt    *time.Time     `json:"cancelledAt"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	Version        int64          `json:"version"`
}

// ApplyStatus records next in the history and stamps the matching timestamp.
// Callers validate the transition first. History timestamps never go
// backwards even if the clock does.
func (o *Order) ApplyStatus(next OrderStatus, at time.Time, note string) {
	if n := len(o.StatusHistory); n > 0 && at.Before(o.StatusHistory[n-1].Timestamp) {
		at = o.StatusHistory[n-1].Timestamp
	}
	o.StatusHistory = append(o.StatusHistory, StatusChange{Status: next, Timestamp: at, Note: note})
	o.Status = next
	o.UpdatedAt = at

	stamp := at
	switch next {
	case OrderStatusDelivered:
		o.DeliveredAt = &stamp
	case OrderStatusCompleted:
		o.CompletedAt = &stamp
	case OrderStatusCancelled:
		o.CancelledAt = &stamp
	}
}

func (o Order) IsParty(userID string) bool {
	return userID != "" && (o.BuyerID == userID || o.SellerID == userID)
}
