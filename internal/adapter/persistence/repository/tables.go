package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultNeedsTableName    = "needs"
	defaultOffersTableName   = "offers"
	defaultOrdersTableName   = "orders"
	defaultDisputesTableName = "disputes"
)

type TableNames struct {
	Needs    string
	Offers   string
	Orders   string
	Disputes string
}

func TableNamesFromEnv() TableNames {
	return TableNames{
		Needs:    getenvDefault("NEEDS_TABLE", defaultNeedsTableName),
		Offers:   getenvDefault("OFFERS_TABLE", defaultOffersTableName),
		Orders:   getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
		Disputes: getenvDefault("DISPUTES_TABLE", defaultDisputesTableName),
	}
}

// TableAdmin is the subset of *dynamodb.Client used to provision tables.
type TableAdmin interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableDefinitions returns the create requests for every table and its GSIs.
func TableDefinitions(tables TableNames) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		tableDefinition(tables.Needs, map[string]string{needsBuyerIDIndex: "buyer_id"}),
		tableDefinition(tables.Offers, map[string]string{offersNeedIDIndex: "need_id", offersSellerIDIndex: "seller_id"}),
		tableDefinition(tables.Orders, map[string]string{ordersBuyerIDIndex: "buyer_id", ordersSellerIDIndex: "seller_id"}),
		tableDefinition(tables.Disputes, map[string]string{disputesOrderIDIndex: "order_id"}),
	}
}

// EnsureTables creates missing tables and waits until they are active.
// Meant for local DynamoDB; production tables are provisioned outside the app.
func EnsureTables(ctx context.Context, api TableAdmin, tables TableNames) error {
	waiter := dynamodb.NewTableExistsWaiter(api)
	for _, def := range TableDefinitions(tables) {
		_, err := api.CreateTable(ctx, def)
		if err != nil {
			var inUse *types.ResourceInUseException
			if !errors.As(err, &inUse) {
				return fmt.Errorf("create table %s: %w", aws.ToString(def.TableName), err)
			}
		}
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, 30*time.Second); err != nil {
			return fmt.Errorf("wait table %s: %w", aws.ToString(def.TableName), err)
		}
	}
	return nil
}

func tableDefinition(name string, indexes map[string]string) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS}}
	seen := map[string]bool{"id": true}
	gsis := make([]types.GlobalSecondaryIndex, 0, len(indexes))
	for _, index := range sortedKeys(indexes) {
		attr := indexes[index]
		if !seen[attr] {
			seen[attr] = true
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
