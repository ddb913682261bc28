package entities

import (
	"sort"
	"time"
)

// OfferStatus represents the negotiation state of an offer.
//
// Only pending offers are decided by users. An accepted offer is declined by
// the system when its order is cancelled. A counter-offer is a separate Offer
// record linked through OriginalOfferID/CounterOfferID.
type OfferStatus string

const (
	OfferStatusPending   OfferStatus = "pending"
	OfferStatusAccepted  OfferStatus = "accepted"
	OfferStatusDeclined  OfferStatus = "declined"
	OfferStatusCountered OfferStatus = "countered"
)

var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferStatusPending:   {OfferStatusAccepted, OfferStatusDeclined, OfferStatusCountered},
	OfferStatusAccepted:  {OfferStatusDeclined},
	OfferStatusDeclined:  {},
	OfferStatusCountered: {},
}

func (s OfferStatus) IsValid() bool {
	_, ok := offerTransitions[s]
	return ok
}

func (s OfferStatus) CanTransitionTo(next OfferStatus) bool {
	for _, allowed := range offerTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Offer is a seller's price proposal for a need.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (need_id-index): need_id
//   - GSI2 (seller_id-index): seller_id
//
// BuyerID is the need owner at creation time.
type Offer struct {
	ID              string      `json:"id"`
	NeedID          string      `json:"needId"`
	BuyerID         string      `json:"buyerId"`
	SellerID        string      `json:"sellerId"`
	SellerName      string      `json:"sellerName"`
	SellerEmail     string      `json:"sellerEmail"`
	Price           float64     `json:"price"`
	Message         string      `json:"message"`
	DeliveryTime    string      `json:"deliveryTime"`
	Status          OfferStatus `json:"status"`
	IsCounterOffer  bool        `json:"isCounterOffer"`
	CounterOfferID  string      `json:"counterOfferId"`
	OriginalOfferID string      `json:"originalOfferId"`
	OrderID         string      `json:"orderId"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Version         int64       `json:"version"`
}

// SortOffersForDisplay orders accepted offers first, then originals before
// counter-offers, then newest first.
func SortOffersForDisplay(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i], offers[j]
		if (a.Status == OfferStatusAccepted) != (b.Status == OfferStatusAccepted) {
			return a.Status == OfferStatusAccepted
		}
		if a.IsCounterOffer != b.IsCounterOffer {
			return !a.IsCounterOffer
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}
