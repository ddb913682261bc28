package response

import (
	"time"

	"marketplace_escrow/internal/domain/entities"
)

type NeedResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	BudgetMin       *float64  `json:"budgetMin"`
	BudgetMax       *float64  `json:"budgetMax"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	BuyerID         string    `json:"buyerId"`
	BuyerName       string    `json:"buyerName"`
	BuyerEmail      string    `json:"buyerEmail"`
	OrderID         *string   `json:"orderId"`
	AcceptedOfferID *string   `json:"acceptedOfferId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Version         int64     `json:"version"`
}

func FromNeed(n entities.Need) NeedResponse {
	return NeedResponse{
		ID:              n.ID,
		Title:           n.Title,
		Description:     n.Description,
		Category:        n.Category,
		BudgetMin:       n.BudgetMin,
		BudgetMax:       n.BudgetMax,
		Location:        n.Location,
		Status:          string(n.Status),
		BuyerID:         n.BuyerID,
		BuyerName:       n.BuyerName,
		BuyerEmail:      n.BuyerEmail,
		OrderID:         nullable(n.OrderID),
		AcceptedOfferID: nullable(n.AcceptedOfferID),
		CreatedAt:       n.CreatedAt,
		UpdatedAt:       n.UpdatedAt,
		Version:         n.Version,
	}
}

func FromNeeds(needs []entities.Need) []NeedResponse {
	out := make([]NeedResponse, 0, len(needs))
	for _, n := range needs {
		out = append(out, FromNeed(n))
	}
	return out
}

// nullable renders empty back-references as JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
