package interfaces

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
)

type IDisputeRepository interface {
	GetByID(ctx context.Context, id string) (entities.Dispute, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.Dispute, error)
}
