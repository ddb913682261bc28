package response

import (
	"time"

	"marketplace_escrow/internal/domain/entities"
)

type StatusChangeResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

type OrderResponse struct {
	ID             string                 `json:"id"`
	NeedID         string                 `json:"needId"`
	OfferID        string                 `json:"offerId"`
	NeedTitle      string                 `json:"needTitle"`
	NeedCategory   string                 `json:"needCategory"`
	OfferMessage   string                 `json:"offerMessage"`
	DeliveryTime   string                 `json:"deliveryTime"`
	Amount         float64                `json:"amount"`
	PlatformFee    float64                `json:"platformFee"`
	SellerEarnings float64                `json:"sellerEarnings"`
	BuyerID        string                 `json:"buyerId"`
	BuyerName      string                 `json:"buyerName"`
	BuyerEmail     string                 `json:"buyerEmail"`
	SellerID       string                 `json:"sellerId"`
	SellerName     string                 `json:"sellerName"`
	SellerEmail    string                 `json:"sellerEmail"`
	Status         string                 `json:"status"`
	WorkflowType   string                 `json:"workflowType"`
	PaymentMethod  string                 `json:"paymentMethod"`
	PaymentID      string                 `json:"paymentId"`
	PaymentStatus  string                 `json:"paymentStatus"`
	StatusHistory  []StatusChangeResponse `json:"statusHistory"`
	DeliveredAt    *time.Time             `json:"deliveredAt"`
	CompletedAt    *time.Time             `json:"completedAt"`
	CancelledAt    *time.Time             `json:"cancelledAt"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
	Version        int64                  `json:"version"`
}

func FromOrder(o entities.Order) OrderResponse {
	history := make([]StatusChangeResponse, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, StatusChangeResponse{Status: string(h.Status), Timestamp: h.Timestamp, Note: h.Note})
	}
	return OrderResponse{
		ID:             o.ID,
		NeedID:         o.NeedID,
		OfferID:        o.OfferID,
		NeedTitle:      o.NeedTitle,
		NeedCategory:   o.NeedCategory,
		OfferMessage:   o.OfferMessage,
		DeliveryTime:   o.DeliveryTime,
		Amount:         o.Amount,
		PlatformFee:    o.PlatformFee,
		SellerEarnings: o.SellerEarnings,
		BuyerID:        o.BuyerID,
		BuyerName:      o.BuyerName,
		BuyerEmail:     o.BuyerEmail,
		SellerID:       o.SellerID,
		SellerName:     o.SellerName,
		SellerEmail:    o.SellerEmail,
		Status:         string(o.Status),
		WorkflowType:   o.WorkflowType,
		PaymentMethod:  o.PaymentMethod,
		PaymentID:      o.PaymentID,
		PaymentStatus:  o.PaymentStatus,
		StatusHistory:  history,
		DeliveredAt:    o.DeliveredAt,
		CompletedAt:    o.CompletedAt,
		CancelledAt:    o.CancelledAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		Version:        o.Version,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
