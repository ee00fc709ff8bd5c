package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	appconfig "catrental/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableAdmin is the subset of *dynamodb.Client needed to create tables.
type TableAdmin interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type index struct {
	name string
	hash string
	// rangeKey is optional.
	rangeKey string
}

type tableSpec struct {
	name    string
	hash    string
	indexes []index
}

// tableSpecs describes the key schema every repository relies on.
func tableSpecs(t appconfig.Tables) []tableSpec {
	return []tableSpec{
		{name: t.Machines, hash: "machine_id", indexes: []index{
			{name: "status-index", hash: "status"},
			{name: "user_id-index", hash: "user_id"},
			{name: "dealer_id-index", hash: "dealer_id"},
		}},
		{name: t.Orders, hash: "id", indexes: []index{
			{name: "user_id-index", hash: "user_id"},
		}},
		{name: t.Transfers, hash: "id", indexes: []index{
			{name: "dealer_id-index", hash: "dealer_id"},
			{name: "order_id-index", hash: "order_id"},
		}},
		{name: t.Users, hash: "user_id"},
		{name: t.RentalRequests, hash: "id", indexes: []index{
			{name: "user_id-index", hash: "user_id"},
			{name: "dealer_id-index", hash: "dealer_id"},
		}},
		{name: t.HealthScoreLogs, hash: "id", indexes: []index{
			{name: "user_id-index", hash: "user_id", rangeKey: "timestamp"},
		}},
	}
}

// EnsureTables creates the missing tables with on-demand billing.
func EnsureTables(ctx context.Context, api TableAdmin, tables appconfig.Tables) error {
	for _, spec := range tableSpecs(tables) {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(spec.name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return fmt.Errorf("describe table %s: %w", spec.name, err)
		}

		if _, err := api.CreateTable(ctx, createTableInput(spec)); err != nil {
			var inUse *types.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", spec.name, err)
		}
		log.Printf("[database] table created name=%s indexes=%d", spec.name, len(spec.indexes))
	}
	return nil
}

func createTableInput(spec tableSpec) *dynamodb.CreateTableInput {
	attrs := map[string]bool{spec.hash: true}
	in := &dynamodb.CreateTableInput{
		TableName:   aws.String(spec.name),
		BillingMode: types.BillingModePayPerRequest,
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(spec.hash), KeyType: types.KeyTypeHash},
		},
	}

	for _, idx := range spec.indexes {
		keys := []types.KeySchemaElement{{AttributeName: aws.String(idx.hash), KeyType: types.KeyTypeHash}}
		attrs[idx.hash] = true
		if idx.rangeKey != "" {
			keys = append(keys, types.KeySchemaElement{AttributeName: aws.String(idx.rangeKey), KeyType: types.KeyTypeRange})
			attrs[idx.rangeKey] = true
		}
		in.GlobalSecondaryIndexes = append(in.GlobalSecondaryIndexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(idx.name),
			KeySchema:  keys,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	for _, name := range sortedKeys(attrs) {
		in.AttributeDefinitions = append(in.AttributeDefinitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}
	return in
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
