package repository

import (
	"context"
	"strings"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const needsBuyerIDIndex = "buyer_id-index"

type needItem struct {
	ID              string `dynamodbav:"id"`
	Title           string `dynamodbav:"title"`
	Description     string `dynamodbav:"description"`
	Category        string `dynamodbav:"category"`
	BudgetMin       string `dynamodbav:"budget_min,omitempty"`
	BudgetMax       string `dynamodbav:"budget_max,omitempty"`
	Location        string `dynamodbav:"location"`
	Status          string `dynamodbav:"status"`
	BuyerID         string `dynamodbav:"buyer_id"`
	BuyerName       string `dynamodbav:"buyer_name"`
	BuyerEmail      string `dynamodbav:"buyer_email"`
	OrderID         string `dynamodbav:"order_id,omitempty"`
	AcceptedOfferID string `dynamodbav:"accepted_offer_id,omitempty"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
	Version         int64  `dynamodbav:"version"`
}

// NeedDynamoRepository reads Need entities from DynamoDB. Writes go through
// DynamoUnitOfWork.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: buyer_id-index (PK: buyer_id)
type NeedDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INeedRepository = (*NeedDynamoRepository)(nil)

func NewNeedDynamoRepository(ddb DynamoAPI, tables TableNames) *NeedDynamoRepository {
	return &NeedDynamoRepository{ddb: ddb, tableName: tables.Needs}
}

func (r *NeedDynamoRepository) GetByID(ctx context.Context, id string) (entities.Need, error) {
	it, ok, err := getItem[needItem](ctx, r.ddb, r.tableName, id)
	if err != nil || !ok {
		return entities.Need{}, err
	}
	return fromNeedItem(it), nil
}

// List scans the table. Status, category and buyer are pushed down as a
// filter expression; the free-text search runs on the decoded items.
func (r *NeedDynamoRepository) List(ctx context.Context, filter entities.NeedFilter) ([]entities.Need, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if expr, names, values := needFilterExpression(filter); expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeNames = names
		in.ExpressionAttributeValues = values
	}

	p := dynamodb.NewScanPaginator(r.ddb, in)
	needs := make([]entities.Need, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var batch []needItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		for _, it := range batch {
			n := fromNeedItem(it)
			if filter.Matches(n) {
				needs = append(needs, n)
			}
		}
	}
	return needs, nil
}

func (r *NeedDynamoRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Need, error) {
	items, err := queryIndex[needItem](ctx, r.ddb, r.tableName, needsBuyerIDIndex, "buyer_id", buyerID)
	if err != nil {
		return nil, err
	}
	needs := make([]entities.Need, 0, len(items))
	for _, it := range items {
		needs = append(needs, fromNeedItem(it))
	}
	return needs, nil
}

func needFilterExpression(f entities.NeedFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var conds []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	add := func(attr, value string) {
		conds = append(conds, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
	}
	if f.Status != "" {
		add("status", string(f.Status))
	}
	if f.Category != "" {
		add("category", f.Category)
	}
	if f.BuyerID != "" {
		add("buyer_id", f.BuyerID)
	}
	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), names, values
}

func toNeedItem(n entities.Need) needItem {
	return needItem{
		ID:              n.ID,
		Title:           n.Title,
		Description:     n.Description,
		Category:        n.Category,
		BudgetMin:       optionalFloatToString(n.BudgetMin),
		BudgetMax:       optionalFloatToString(n.BudgetMax),
		Location:        n.Location,
		Status:          string(n.Status),
		BuyerID:         n.BuyerID,
		BuyerName:       n.BuyerName,
		BuyerEmail:      n.BuyerEmail,
		OrderID:         n.OrderID,
		AcceptedOfferID: n.AcceptedOfferID,
		CreatedAt:       formatTime(n.CreatedAt),
		UpdatedAt:       formatTime(n.UpdatedAt),
		Version:         n.Version,
	}
}

func fromNeedItem(it needItem) entities.Need {
	return entities.Need{
		ID:              it.ID,
		Title:           it.Title,
		Description:     it.Description,
		Category:        it.Category,
		BudgetMin:       parseOptionalFloat(it.BudgetMin),
		BudgetMax:       parseOptionalFloat(it.BudgetMax),
		Location:        it.Location,
		Status:          entities.NeedStatus(it.Status),
		BuyerID:         it.BuyerID,
		BuyerName:       it.BuyerName,
		BuyerEmail:      it.BuyerEmail,
		OrderID:         it.OrderID,
		AcceptedOfferID: it.AcceptedOfferID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		Version:         it.Version,
	}
}
