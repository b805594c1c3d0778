package repository

import (
	"context"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type settlementItem struct {
	ID               string   `dynamodbav:"id"`
	ManagerID        string   `dynamodbav:"manager_id"`
	WorkshopID       string   `dynamodbav:"workshop_id"`
	Amount           float64  `dynamodbav:"amount"`
	JobIDs           []string `dynamodbav:"job_ids"`
	Notes            string   `dynamodbav:"notes"`
	SubmittedDate    string   `dynamodbav:"submitted_date"`
	ConfirmedByOwner bool     `dynamodbav:"confirmed_by_owner"`
	ConfirmationDate string   `dynamodbav:"confirmation_date,omitempty"`
}

// SettlementDynamoRepository persists settlements.
//
// Table requirements:
//   - PK: id (string)
//   - GSI workshop_id-index: workshop_id
//   - GSI manager_id-index: manager_id
type SettlementDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb DynamoAPI, tables Tables) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{ddb: ddb, tables: tables}
}

func (r *SettlementDynamoRepository) Create(ctx context.Context, s entities.Settlement) (entities.Settlement, error) {
	av, err := attributevalue.MarshalMap(toSettlementItem(s))
	if err != nil {
		return entities.Settlement{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Settlements),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Settlement{}, interfaces.ErrDuplicateKey
		}
		return entities.Settlement{}, err
	}
	return s, nil
}

func (r *SettlementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Settlement, error) {
	it, ok, err := getItem[settlementItem](ctx, r.ddb, r.tables.Settlements, stringKey("id", id))
	if err != nil || !ok {
		return entities.Settlement{}, err
	}
	return fromSettlementItem(it), nil
}

func (r *SettlementDynamoRepository) List(ctx context.Context, f entities.SettlementFilter) ([]entities.Settlement, error) {
	var (
		items []settlementItem
		err   error
	)
	switch {
	case f.ManagerID != "":
		items, err = queryIndex[settlementItem](ctx, r.ddb, r.tables.Settlements, managerIndex, "manager_id", f.ManagerID)
	case f.WorkshopID != "":
		items, err = queryIndex[settlementItem](ctx, r.ddb, r.tables.Settlements, workshopIndex, "workshop_id", f.WorkshopID)
	default:
		return nil, interfaces.ErrUnboundedQuery
	}
	if err != nil {
		return nil, err
	}

	list := make([]entities.Settlement, 0, len(items))
	for _, it := range items {
		s := fromSettlementItem(it)
		if f.Matches(s) {
			list = append(list, s)
		}
	}
	sortNewestFirst(list, func(s entities.Settlement) time.Time { return s.SubmittedDate })
	return list, nil
}

func (r *SettlementDynamoRepository) Confirm(ctx context.Context, id string, at time.Time) (entities.Settlement, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Settlements),
		Key:                 stringKey("id", id),
		UpdateExpression:    aws.String("SET #confirmed = :true, #confirmed_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#confirmed":    "confirmed_by_owner",
			"#confirmed_at": "confirmation_date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
			":at":   &types.AttributeValueMemberS{Value: formatTime(at)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Settlement{}, interfaces.ErrNotFound
		}
		return entities.Settlement{}, err
	}

	var it settlementItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Settlement{}, err
	}
	return fromSettlementItem(it), nil
}

func toSettlementItem(s entities.Settlement) settlementItem {
	return settlementItem{
		ID:               s.ID,
		ManagerID:        s.ManagerID,
		WorkshopID:       s.WorkshopID,
		Amount:           s.Amount,
		JobIDs:           s.JobIDs,
		Notes:            s.Notes,
		SubmittedDate:    formatTime(s.SubmittedDate),
		ConfirmedByOwner: s.ConfirmedByOwner,
		ConfirmationDate: formatTimePtr(s.ConfirmationDate),
	}
}

func fromSettlementItem(it settlementItem) entities.Settlement {
	jobIDs := it.JobIDs
	if jobIDs == nil {
		jobIDs = []string{}
	}
	return entities.Settlement{
		ID:               it.ID,
		ManagerID:        it.ManagerID,
		WorkshopID:       it.WorkshopID,
		Amount:           it.Amount,
		JobIDs:           jobIDs,
		Notes:            it.Notes,
		SubmittedDate:    parseTime(it.SubmittedDate),
		ConfirmedByOwner: it.ConfirmedByOwner,
		ConfirmationDate: parseTimePtr(it.ConfirmationDate),
	}
}
