package request

import (
	"strings"

	"marketplace_escrow/internal/domain/entities"
)

type CreateDisputeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type ResolveDisputeRequest struct {
	Outcome    string `json:"outcome" binding:"required"`
	Resolution string `json:"resolution"`
}

func (r ResolveDisputeRequest) DisputeOutcome() entities.DisputeOutcome {
	return entities.DisputeOutcome(strings.ToLower(strings.TrimSpace(r.Outcome)))
}
