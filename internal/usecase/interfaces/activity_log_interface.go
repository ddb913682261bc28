package interfaces

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
)

// IActivityLog persists the status-change audit trail.
type IActivityLog interface {
	Record(ctx context.Context, entry entities.ActivityEntry) error
}
