package repository

import (
	"context"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"
)

const (
	offersNeedIDIndex   = "need_id-index"
	offersSellerIDIndex = "seller_id-index"
)

type offerItem struct {
	ID              string `dynamodbav:"id"`
	NeedID          string `dynamodbav:"need_id"`
	BuyerID         string `dynamodbav:"buyer_id"`
	SellerID        string `dynamodbav:"seller_id"`
	SellerName      string `dynamodbav:"seller_name"`
	SellerEmail     string `dynamodbav:"seller_email"`
	Price           string `dynamodbav:"price"`
	Message         string `dynamodbav:"message"`
	DeliveryTime    string `dynamodbav:"delivery_time"`
	Status          string `dynamodbav:"status"`
	IsCounterOffer  bool   `dynamodbav:"is_counter_offer"`
	CounterOfferID  string `dynamodbav:"counter_offer_id,omitempty"`
	OriginalOfferID string `dynamodbav:"original_offer_id,omitempty"`
	OrderID         string `dynamodbav:"order_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	Version         int64  `dynamodbav:"version"`
}

// OfferDynamoRepository reads Offer entities from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: need_id-index (PK: need_id)
//   - GSI: seller_id-index (PK: seller_id)
type OfferDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb DynamoAPI, tables TableNames) *OfferDynamoRepository {
	return &OfferDynamoRepository{ddb: ddb, tableName: tables.Offers}
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	it, ok, err := getItem[offerItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Offer{}, err
	}
	return fromOfferItem(it), nil
}

func (r *OfferDynamoRepository) ListByNeedID(ctx context.Context, needID string) ([]entities.Offer, error) {
	return r.listByIndex(ctx, offersNeedIDIndex, "need_id", needID)
}

func (r *OfferDynamoRepository) ListBySellerID(ctx context.Context, sellerID string) ([]entities.Offer, error) {
	return r.listByIndex(ctx, offersSellerIDIndex, "seller_id", sellerID)
}

func (r *OfferDynamoRepository) listByIndex(ctx context.Context, index, attr, value string) ([]entities.Offer, error) {
	items, err := queryIndex[offerItem](ctx, r.ddb, r.tableName, index, attr, value)
	if err != nil {
		return nil, err
	}
	offers := make([]entities.Offer, 0, len(items))
	for _, it := range items {
		offers = append(offers, fromOfferItem(it))
	}
	return offers, nil
}

func toOfferItem(o entities.Offer) offerItem {
	return offerItem{
		ID:              o.ID,
		NeedID:          o.NeedID,
		BuyerID:         o.BuyerID,
		SellerID:        o.SellerID,
		SellerName:      o.SellerName,
		SellerEmail:     o.SellerEmail,
		Price:           floatToString(o.Price),
		Message:         o.Message,
		DeliveryTime:    o.DeliveryTime,
		Status:          string(o.Status),
		IsCounterOffer:  o.IsCounterOffer,
		CounterOfferID:  o.CounterOfferID,
		OriginalOfferID: o.OriginalOfferID,
		OrderID:         o.OrderID,
		CreatedAt:       formatTime(o.CreatedAt),
		UpdatedAt:       formatTime(o.UpdatedAt),
		Version:         o.Version,
	}
}

func fromOfferItem(it offerItem) entities.Offer {
	return entities.Offer{
		ID:              it.ID,
		NeedID:          it.NeedID,
		BuyerID:         it.BuyerID,
		SellerID:        it.SellerID,
		SellerName:      it.SellerName,
		SellerEmail:     it.SellerEmail,
		Price:           parseFloat(it.Price),
		Message:         it.Message,
		DeliveryTime:    it.DeliveryTime,
		Status:          entities.OfferStatus(it.Status),
		IsCounterOffer:  it.IsCounterOffer,
		CounterOfferID:  it.CounterOfferID,
		OriginalOfferID: it.OriginalOfferID,
		OrderID:         it.OrderID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
}
