package entities

import "time"

type DisputeStatus string

const (
	DisputeStatusPending  DisputeStatus = "pending"
	DisputeStatusResolved DisputeStatus = "resolved"
)

// DisputeOutcome decides where the escrowed money goes.
type DisputeOutcome string

const (
	// DisputeOutcomeRelease pays the seller and completes the order.
	DisputeOutcomeRelease DisputeOutcome = "release"
	// DisputeOutcomeRefund returns the money to the buyer and cancels the order.
	DisputeOutcomeRefund DisputeOutcome = "refund"
)

func (o DisputeOutcome) IsValid() bool {
	return o == DisputeOutcomeRelease || o == DisputeOutcomeRefund
}

// Dispute is raised by a buyer against a delivered order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type Dispute struct {
	ID         string         `json:"id"`
	OrderID    string         `json:"orderId"`
	NeedID     string         `json:"needId"`
	BuyerID    string         `json:"buyerId"`
	SellerID   string         `json:"sellerId"`
	Reason     string         `json:"reason"`
	Status     DisputeStatus  `json:"status"`
	Outcome    DisputeOutcome `json:"outcome"`
	Resolution string         `json:"resolution"`
	ResolvedBy string         `json:"resolvedBy"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	ResolvedAt *time.Time     `json:"resolvedAt"`
	Version    int64          `json:"version"`
}
