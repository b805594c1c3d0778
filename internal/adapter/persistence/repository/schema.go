package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableReadyTimeout = 2 * time.Minute

// SchemaAPI is the subset of *dynamodb.Client used to provision tables.
type SchemaAPI interface {
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

type tableSpec struct {
	name    string
	key     string
	indexes map[string]string
}

func (t Tables) specs() []tableSpec {
	return []tableSpec{
		{name: t.Users, key: "id", indexes: map[string]string{emailIndex: "email"}},
		{name: t.Workshops, key: "id", indexes: map[string]string{ownerIndex: "owner_id"}},
		{name: t.InviteCodes, key: "code", indexes: map[string]string{workshopIndex: "workshop_id"}},
		{name: t.Managers, key: "id", indexes: map[string]string{userIndex: "user_id", workshopIndex: "workshop_id"}},
		{name: t.Jobs, key: "id", indexes: map[string]string{workshopIndex: "workshop_id", managerIndex: "manager_id"}},
		{name: t.JobUpdates, key: "id", indexes: map[string]string{jobIndex: "job_id"}},
		{name: t.Payments, key: "id", indexes: map[string]string{jobIndex: "job_id", collectedByIndex: "collected_by"}},
		{name: t.Settlements, key: "id", indexes: map[string]string{workshopIndex: "workshop_id", managerIndex: "manager_id"}},
	}
}

// EnsureTables creates every missing table with its indexes and waits until
// each one is active. Existing tables are left untouched.
func EnsureTables(ctx context.Context, api SchemaAPI, tables Tables) ([]string, error) {
	var created []string
	for _, table := range tables.specs() {
		_, err := api.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table.name)})
		if err == nil {
			continue
		}
		var notFound *types.ResourceNotFoundException
		if !errors.As(err, &notFound) {
			return created, err
		}

		if _, err := api.CreateTable(ctx, createTableInput(table)); err != nil {
			return created, err
		}
		waiter := dynamodb.NewTableExistsWaiter(api)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table.name)}, tableReadyTimeout); err != nil {
			return created, err
		}
		created = append(created, table.name)
	}
	return created, nil
}

func createTableInput(table tableSpec) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String(table.key), AttributeType: types.ScalarAttributeTypeS}}
	defined := map[string]bool{table.key: true}

	var gsis []types.GlobalSecondaryIndex
	for index, attr := range table.indexes {
		if !defined[attr] {
			attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: types.ScalarAttributeTypeS})
			defined[attr] = true
		}
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(index),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:              aws.String(table.name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(table.key), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
