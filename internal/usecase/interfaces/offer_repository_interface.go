package interfaces

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
)

// IOfferRepository abstracts read access to offers and counter-offers.
type IOfferRepository interface {
	GetByID(ctx context.Context, id string) (entities.Offer, error)
	ListByNeedID(ctx context.Context, needID string) ([]entities.Offer, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]entities.Offer, error)
}
