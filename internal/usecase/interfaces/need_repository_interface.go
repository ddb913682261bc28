package interfaces

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
)

// INeedRepository abstracts read access to needs.
//
// Writes go through IUnitOfWork so multi-entity transitions stay atomic.
// A missing need is reported as a zero-value Need (empty ID), not an error.
type INeedRepository interface {
	GetByID(ctx context.Context, id string) (entities.Need, error)
	List(ctx context.Context, filter entities.NeedFilter) ([]entities.Need, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Need, error)
}
