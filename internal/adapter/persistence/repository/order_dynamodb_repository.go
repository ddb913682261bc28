package repository

import (
	"context"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"
)

const (
	ordersBuyerIDIndex  = "buyer_id-index"
	ordersSellerIDIndex = "seller_id-index"
)

type statusChangeItem struct {
	Status    string `dynamodbav:"status"`
	Timestamp string `dynamodbav:"timestamp"`
	Note      string `dynamodbav:"note"`
}

type orderItem struct {
	ID             string             `dynamodbav:"id"`
	NeedID         string             `dynamodbav:"need_id"`
	OfferID        string             `dynamodbav:"offer_id"`
	NeedTitle      string             `dynamodbav:"need_title"`
	NeedCategory   string             `dynamodbav:"need_category"`
	OfferMessage   string             `dynamodbav:"offer_message"`
	DeliveryTime   string             `dynamodbav:"delivery_time"`
	Amount         string             `dynamodbav:"amount"`
	PlatformFee    string             `dynamodbav:"platform_fee"`
	SellerEarnings string             `dynamodbav:"seller_earnings"`
	BuyerID        string             `dynamodbav:"buyer_id"`
	BuyerName      string             `dynamodbav:"buyer_name"`
	BuyerEmail     string             `dynamodbav:"buyer_email"`
	SellerID       string             `dynamodbav:"seller_id"`
	SellerName     string             `dynamodbav:"seller_name"`
	SellerEmail    string             `dynamodbav:"seller_email"`
	Status         string             `dynamodbav:"status"`
	WorkflowType   string             `dynamodbav:"workflow_type"`
	PaymentMethod  string             `dynamodbav:"payment_method"`
	PaymentID      string             `dynamodbav:"payment_id"`
	PaymentStatus  string             `dynamodbav:"payment_status"`
	IdempotencyKey string             `dynamodbav:"idempotency_key,omitempty"`
	StatusHistory  []statusChangeItem `dynamodbav:"status_history"`
	DeliveredAt    string             `dynamodbav:"delivered_at,omitempty"`
	CompletedAt    string             `dynamodbav:"completed_at,omitempty"`
	CancelledAt    string             `dynamodbav:"cancelled_at,omitempty"`
	CreatedAt      string             `dynamodbav:"created_at"`
	UpdatedAt      string             `dynamodbav:"updated_at"`
	Version        int64              `dynamodbav:"version"`
}

// OrderDynamoRepository reads Order entities from DynamoDB. The status
// history is stored inline as a list of maps.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)
//   - GSI: seller_id-index (PK: seller_id)
type OrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoAPI, tables TableNames) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tables.Orders}
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	it, ok, err := getItem[orderItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersBuyerIDIndex, "buyer_id", buyerID)
}

func (r *OrderDynamoRepository) ListBySellerID(ctx context.Context, sellerID string) ([]entities.Order, error) {
	return r.listByIndex(ctx, ordersSellerIDIndex, "seller_id", sellerID)
}

func (r *OrderDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Order, error) {
	items, err := queryIndex[orderItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func toOrderItem(o entities.Order) orderItem {
	history := make([]statusChangeItem, 0, len(o.StatusHistory))
	for _, h := range o.StatusHistory {
		history = append(history, statusChangeItem{
			Status:    string(h.Status),
			Timestamp: formatTime(h.Timestamp),
			Note:      h.Note,
		})
	}
	return orderItem{
		ID:             o.ID,
		NeedID:         o.NeedID,
		OfferID:        o.OfferID,
		NeedTitle:      o.NeedTitle,
		NeedCategory:   o.NeedCategory,
		OfferMessage:   o.OfferMessage,
		DeliveryTime:   o.DeliveryTime,
		Amount:         floatToString(o.Amount),
		PlatformFee:    floatToString(o.PlatformFee),
		SellerEarnings: floatToString(o.SellerEarnings),
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
		IdempotencyKey: o.IdempotencyKey,
		StatusHistory:  history,
		DeliveredAt:    formatOptionalTime(o.DeliveredAt),
		CompletedAt:    formatOptionalTime(o.CompletedAt),
		CancelledAt:    formatOptionalTime(o.CancelledAt),
		CreatedAt:      formatTime(o.CreatedAt),
		UpdatedAt:      formatTime(o.UpdatedAt),
		Version:        o.Version,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	history := make([]entities.StatusChange, 0, len(it.StatusHistory))
	for _, h := range it.StatusHistory {
		history = append(history, entities.StatusChange{
			Status:    entities.OrderStatus(h.Status),
			Timestamp: parseTime(h.Timestamp),
			Note:      h.Note,
		})
	}
	return entities.Order{
		ID:             it.ID,
		NeedID:         it.NeedID,
		OfferID:        it.OfferID,
		NeedTitle:      it.NeedTitle,
		NeedCategory:   it.NeedCategory,
		OfferMessage:   it.OfferMessage,
		DeliveryTime:   it.DeliveryTime,
		Amount:         parseFloat(it.Amount),
		PlatformFee:    parseFloat(it.PlatformFee),
		SellerEarnings: parseFloat(it.SellerEarnings),
		BuyerID:        it.BuyerID,
		BuyerName:      it.BuyerName,
		BuyerEmail:     it.BuyerEmail,
		SellerID:       it.SellerID,
		SellerName:     it.SellerName,
		SellerEmail:    it.SellerEmail,
		Status:         entities.OrderStatus(it.Status),
		WorkflowType:   it.WorkflowType,
		PaymentMethod:  it.PaymentMethod,
		PaymentID:      it.PaymentID,
		PaymentStatus:  it.PaymentStatus,
		IdempotencyKey: it.IdempotencyKey,
		StatusHistory:  history,
		DeliveredAt:    parseOptionalTime(it.DeliveredAt),
		CompletedAt:    parseOptionalTime(it.CompletedAt),
		CancelledAt:    parseOptionalTime(it.CancelledAt),
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
		Version:        it.Version,
	}
}
