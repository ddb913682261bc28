package response

import (
	"time"

	"marketplace_escrow/internal/domain/entities"
)

type OfferResponse struct {
	ID              string    `json:"id"`
	NeedID          string    `json:"needId"`
	SellerID        string    `json:"sellerId"`
	SellerName      string    `json:"sellerName"`
	SellerEmail     string    `json:"sellerEmail"`
	Price           float64   `json:"price"`
	Message         string    `json:"message"`
	DeliveryTime    string    `json:"deliveryTime"`
	Status          string    `json:"status"`
	IsCounterOffer  bool      `json:"isCounterOffer"`
	CounterOfferID  *string   `json:"counterOfferId"`
	OriginalOfferID *string   `json:"originalOfferId"`
	OrderID         *string   `json:"orderId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Version         int64     `json:"version"`
}

func FromOffer(o entities.Offer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		NeedID:          o.NeedID,
		SellerID:        o.SellerID,
		SellerName:      o.SellerName,
		SellerEmail:     o.SellerEmail,
		Price:           o.Price,
		Message:         o.Message,
		DeliveryTime:    o.DeliveryTime,
		Status:          string(o.Status),
		IsCounterOffer:  o.IsCounterOffer,
		CounterOfferID:  nullable(o.CounterOfferID),
		OriginalOfferID: nullable(o.OriginalOfferID),
		OrderID:         nullable(o.OrderID),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Version:         o.Version,
	}
}

func FromOffers(offers []entities.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(offers))
	for _, o := range offers {
		out = append(out, FromOffer(o))
	}
	return out
}
