package repository

import (
	"context"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"
)

const disputesOrderIDIndex = "order_id-index"

type disputeItem struct {
	ID         string `dynamodbav:"id"`
	OrderID    string `dynamodbav:"order_id"`
	NeedID     string `dynamodbav:"need_id"`
	BuyerID    string `dynamodbav:"buyer_id"`
	SellerID   string `dynamodbav:"seller_id"`
	Reason     string `dynamodbav:"reason"`
	Status     string `dynamodbav:"status"`
	Outcome    string `dynamodbav:"outcome,omitempty"`
	Resolution string `dynamodbav:"resolution,omitempty"`
	ResolvedBy string `dynamodbav:"resolved_by,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
	ResolvedAt string `dynamodbav:"resolved_at,omitempty"`
	Version    int64  `dynamodbav:"version"`
}

// DisputeDynamoRepository reads Dispute entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)
type DisputeDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IDisputeRepository = (*DisputeDynamoRepository)(nil)

func NewDisputeDynamoRepository(ddb DynamoAPI, tables TableNames) *DisputeDynamoRepository {
	return &DisputeDynamoRepository{ddb: ddb, tableName: tables.Disputes}
}

func (r *DisputeDynamoRepository) GetByID(ctx context.Context, id string) (entities.Dispute, error) {
	it, ok, err := getItem[disputeItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Dispute{}, err
	}
	return fromDisputeItem(it), nil
}

func (r *DisputeDynamoRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Dispute, error) {
	items, err := queryIndex[disputeItem](ctx, r.ddb, r.tableName, disputesOrderIDIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}
	disputes := make([]entities.Dispute, 0, len(items))
	for _, it := range items {
		disputes = append(disputes, fromDisputeItem(it))
	}
	return disputes, nil
}

func toDisputeItem(d entities.Dispute) disputeItem {
	return disputeItem{
		ID:         d.ID,
		OrderID:    d.OrderID,
		NeedID:     d.NeedID,
		BuyerID:    d.BuyerID,
		SellerID:   d.SellerID,
		Reason:     d.Reason,
		Status:     string(d.Status),
		Outcome:    string(d.Outcome),
		Resolution: d.Resolution,
		ResolvedBy: d.ResolvedBy,
		CreatedAt:  formatTime(d.CreatedAt),
		UpdatedAt:  formatTime(d.UpdatedAt),
		ResolvedAt: formatOptionalTime(d.ResolvedAt),
		Version:    d.Version,
	}
}

func fromDisputeItem(it disputeItem) entities.Dispute {
	return entities.Dispute{
		ID:         it.ID,
		OrderID:    it.OrderID,
		NeedID:     it.NeedID,
		BuyerID:    it.BuyerID,
		SellerID:   it.SellerID,
		Reason:     it.Reason,
		Status:     entities.DisputeStatus(it.Status),
		Outcome:    entities.DisputeOutcome(it.Outcome),
		Resolution: it.Resolution,
		ResolvedBy: it.ResolvedBy,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
		ResolvedAt: parseOptionalTime(it.ResolvedAt),
		Version:    it.Version,
	}
}
