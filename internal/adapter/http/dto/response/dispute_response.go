package response

import (
	"time"

	"marketplace_escrow/internal/domain/entities"
)

type DisputeResponse struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"orderId"`
	NeedID     string     `json:"needId"`
	BuyerID    string     `json:"buyerId"`
	SellerID   string     `json:"sellerId"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	Outcome    *string    `json:"outcome"`
	Resolution *string    `json:"resolution"`
	ResolvedBy *string    `json:"resolvedBy"`
	CreatedAt  time.Time  `json:"createdAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`
}

func FromDispute(d entities.Dispute) DisputeResponse {
	return DisputeResponse{
		ID:         d.ID,
		OrderID:    d.OrderID,
		NeedID:     d.NeedID,
		BuyerID:    d.BuyerID,
		SellerID:   d.SellerID,
		Reason:     d.Reason,
		Status:     string(d.Status),
		Outcome:    nullable(string(d.Outcome)),
		Resolution: nullable(d.Resolution),
		ResolvedBy: nullable(d.ResolvedBy),
		CreatedAt:  d.CreatedAt,
		ResolvedAt: d.ResolvedAt,
	}
}

func FromDisputes(disputes []entities.Dispute) []DisputeResponse {
	out := make([]DisputeResponse, 0, len(disputes))
	for _, d := range disputes {
		out = append(out, FromDispute(d))
	}
	return out
}
