package interfaces

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
)

// IOrderRepository abstracts read access to escrow orders.
type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.Order, error)
}
