package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"marketplace_escrow/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const maxTransactItems = 100

// DynamoUnitOfWork writes a WriteSet with a single TransactWriteItems call.
// Each put is conditioned on the version the caller read: version 0 must not
// exist yet, anything else must still match. The stored version is bumped by
// one.
type DynamoUnitOfWork struct {
	ddb    DynamoAPI
	tables TableNames
}

var _ interfaces.IUnitOfWork = (*DynamoUnitOfWork)(nil)

func NewDynamoUnitOfWork(ddb DynamoAPI, tables TableNames) *DynamoUnitOfWork {
	return &DynamoUnitOfWork{ddb: ddb, tables: tables}
}

func (u *DynamoUnitOfWork) Commit(ctx context.Context, ws interfaces.WriteSet) error {
	items, err := u.transactItems(ws)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	if len(items) > maxTransactItems {
		return fmt.Errorf("write set of %d items exceeds transaction limit", len(items))
	}

	_, err = u.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if err != nil {
		if isVersionConflict(err) {
			return fmt.Errorf("commit: %w", interfaces.ErrVersionConflict)
		}
		return err
	}
	return nil
}

func (u *DynamoUnitOfWork) transactItems(ws interfaces.WriteSet) ([]types.TransactWriteItem, error) {
	items := make([]types.TransactWriteItem, 0, ws.Len())

	for _, n := range ws.Needs {
		it := toNeedItem(n)
		it.Version = n.Version + 1
		put, err := versionedPut(u.tables.Needs, it, n.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, o := range ws.Offers {
		it := toOfferItem(o)
		it.Version = o.Version + 1
		put, err := versionedPut(u.tables.Offers, it, o.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, o := range ws.Orders {
		it := toOrderItem(o)
		it.Version = o.Version + 1
		put, err := versionedPut(u.tables.Orders, it, o.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, d := range ws.Disputes {
		it := toDisputeItem(d)
		it.Version = d.Version + 1
		put, err := versionedPut(u.tables.Disputes, it, d.Version)
		if err != nil {
			return nil, err
		}
		items = append(items, put)
	}
	for _, n := range ws.DeletedNeeds {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(u.tables.Needs),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: n.ID},
				},
				ConditionExpression: aws.String("#version = :expected"),
				ExpressionAttributeNames: map[string]string{
					"#version": "version",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(n.Version, 10)},
				},
			},
		})
	}
	return items, nil
}

func versionedPut(table string, item any, expected int64) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return types.TransactWriteItem{}, err
	}
	put := &types.Put{
		TableName: aws.String(table),
		Item:      av,
	}
	if expected == 0 {
		put.ConditionExpression = aws.String("attribute_not_exists(#id)")
		put.ExpressionAttributeNames = map[string]string{"#id": "id"}
	} else {
		put.ConditionExpression = aws.String("#version = :expected")
		put.ExpressionAttributeNames = map[string]string{"#version": "version"}
		put.ExpressionAttributeValues = map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		}
	}
	return types.TransactWriteItem{Put: put}, nil
}

func isVersionConflict(err error) bool {
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			switch aws.ToString(reason.Code) {
			case "ConditionalCheckFailed", "TransactionConflict":
				return true
			}
		}
		return false
	}
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}
