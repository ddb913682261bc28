package entities

import (
	"strings"
	"time"
)

// NeedStatus represents the lifecycle of a buyer's posted need.
//
// Domain notes:
//   - A need is open until an accepted offer is paid; the order then drives it.
//   - Order and dispute flows push derived statuses back into the need.
type NeedStatus string

const (
	NeedStatusOpen           NeedStatus = "open"
	NeedStatusInProgress     NeedStatus = "in_progress"
	NeedStatusDelivered      NeedStatus = "delivered"
	NeedStatusCompleted      NeedStatus = "completed"
	NeedStatusClosed         NeedStatus = "closed"
	NeedStatusDisputePending NeedStatus = "dispute_pending"
)

var needTransitions = map[NeedStatus][]NeedStatus{
	NeedStatusOpen:           {NeedStatusInProgress, NeedStatusClosed},
	NeedStatusInProgress:     {NeedStatusDelivered, NeedStatusDisputePending, NeedStatusOpen},
	NeedStatusDelivered:      {NeedStatusCompleted, NeedStatusDisputePending},
	NeedStatusDisputePending: {NeedStatusCompleted, NeedStatusClosed},
	NeedStatusCompleted:      {},
	NeedStatusClosed:         {},
}

func (s NeedStatus) IsValid() bool {
	_, ok := needTransitions[s]
	return ok
}

// CanTransitionTo reports whether next is reachable from s. Rewriting the
// current status is always allowed.
func (s NeedStatus) CanTransitionTo(next NeedStatus) bool {
	if s == next {
		return s.IsValid()
	}
	for _, allowed := range needTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Need is a service request posted by a buyer.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//
// OrderID and AcceptedOfferID are empty until an offer is accepted and paid.
type Need struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	BudgetMin       *float64   `json:"budgetMin"`
	BudgetMax       *float64   `json:"budgetMax"`
	Location        string     `json:"location"`
	Status          NeedStatus `json:"status"`
	BuyerID         string     `json:"buyerId"`
	BuyerName       string     `json:"buyerName"`
	BuyerEmail      string     `json:"buyerEmail"`
	OrderID         string     `json:"orderId"`
	AcceptedOfferID string     `json:"acceptedOfferId"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	Version         int64      `json:"version"`
}

// NeedFilter narrows the marketplace listing. Zero values match everything.
type NeedFilter struct {
	Status   NeedStatus
	Category string
	Search   string
	BuyerID  string
}

func (f NeedFilter) Matches(n Need) bool {
	if f.Status != "" && n.Status != f.Status {
		return false
	}
	if f.Category != "" && n.Category != f.Category {
		return false
	}
	if f.BuyerID != "" && n.BuyerID != f.BuyerID {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(n.Title), q) && !strings.Contains(strings.ToLower(n.Description), q) {
			return false
		}
	}
	return true
}
