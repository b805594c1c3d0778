package repository

import (
	"context"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type workshopItem struct {
	ID        string `dynamodbav:"id"`
	OwnerID   string `dynamodbav:"owner_id"`
	Name      string `dynamodbav:"name"`
	Address   string `dynamodbav:"address"`
	Phone     string `dynamodbav:"phone"`
	GSTNumber string `dynamodbav:"gst_number"`
	Currency  string `dynamodbav:"currency"`
	CreatedAt string `dynamodbav:"created_at"`
}

// WorkshopDynamoRepository persists workshops.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index: owner_id
//
// A guard item "owner#<owner_id>" keeps one workshop per owner.
type WorkshopDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IWorkshopRepository = (*WorkshopDynamoRepository)(nil)

func NewWorkshopDynamoRepository(ddb DynamoAPI, tables Tables) *WorkshopDynamoRepository {
	return &WorkshopDynamoRepository{ddb: ddb, tables: tables}
}

func (r *WorkshopDynamoRepository) Create(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	put, err := putNew(r.tables.Workshops, toWorkshopItem(w))
	if err != nil {
		return entities.Workshop{}, err
	}
	guard, err := putGuard(r.tables.Workshops, "owner#"+w.OwnerID, w.ID)
	if err != nil {
		return entities.Workshop{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, guard},
	})
	if err != nil {
		if canceledAt(err, 0) || canceledAt(err, 1) {
			return entities.Workshop{}, interfaces.ErrDuplicateKey
		}
		return entities.Workshop{}, err
	}
	return w, nil
}

func (r *WorkshopDynamoRepository) GetByID(ctx context.Context, id string) (entities.Workshop, error) {
	it, ok, err := getItem[workshopItem](ctx, r.ddb, r.tables.Workshops, stringKey("id", id))
	if err != nil || !ok {
		return entities.Workshop{}, err
	}
	return fromWorkshopItem(it), nil
}

func (r *WorkshopDynamoRepository) GetByOwnerID(ctx context.Context, ownerID string) (entities.Workshop, error) {
	items, err := queryIndex[workshopItem](ctx, r.ddb, r.tables.Workshops, ownerIndex, "owner_id", ownerID)
	if err != nil {
		return entities.Workshop{}, err
	}
	if len(items) == 0 {
		return entities.Workshop{}, nil
	}
	return fromWorkshopItem(items[0]), nil
}

func (r *WorkshopDynamoRepository) Update(ctx context.Context, w entities.Workshop) (entities.Workshop, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Workshops),
		Key:                 stringKey("id", w.ID),
		UpdateExpression:    aws.String("SET #name = :name, #address = :address, #phone = :phone, #gst = :gst, #currency = :currency"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#name":     "name",
			"#address":  "address",
			"#phone":    "phone",
			"#gst":      "gst_number",
			"#currency": "currency",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":name":     &types.AttributeValueMemberS{Value: w.Name},
			":address":  &types.AttributeValueMemberS{Value: w.Address},
			":phone":    &types.AttributeValueMemberS{Value: w.Phone},
			":gst":      &types.AttributeValueMemberS{Value: w.GSTNumber},
			":currency": &types.AttributeValueMemberS{Value: w.Currency},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Workshop{}, interfaces.ErrNotFound
		}
		return entities.Workshop{}, err
	}

	var it workshopItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Workshop{}, err
	}
	return fromWorkshopItem(it), nil
}

func toWorkshopItem(w entities.Workshop) workshopItem {
	return workshopItem{
		ID:        w.ID,
		OwnerID:   w.OwnerID,
		Name:      w.Name,
		Address:   w.Address,
		Phone:     w.Phone,
		GSTNumber: w.GSTNumber,
		Currency:  w.Currency,
		CreatedAt: formatTime(w.CreatedAt),
	}
}

func fromWorkshopItem(it workshopItem) entities.Workshop {
	return entities.Workshop{
		ID:        it.ID,
		OwnerID:   it.OwnerID,
		Name:      it.Name,
		Address:   it.Address,
		Phone:     it.Phone,
		GSTNumber: it.GSTNumber,
		Currency:  it.Currency,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
