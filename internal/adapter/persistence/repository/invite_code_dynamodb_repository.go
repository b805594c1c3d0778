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

type inviteCodeItem struct {
	Code       string `dynamodbav:"code"`
	ID         string `dynamodbav:"id"`
	WorkshopID string `dynamodbav:"workshop_id"`
	CreatedBy  string `dynamodbav:"created_by"`
	Active     bool   `dynamodbav:"is_active"`
	UsedBy     string `dynamodbav:"used_by,omitempty"`
	UsedAt     string `dynamodbav:"used_at,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// InviteCodeDynamoRepository persists invite codes.
//
// Table requirements:
//   - PK: code (string)
//   - GSI workshop_id-index: workshop_id
//
// used_by is absent until the code is consumed.
type InviteCodeDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IInviteCodeRepository = (*InviteCodeDynamoRepository)(nil)

func NewInviteCodeDynamoRepository(ddb DynamoAPI, tables Tables) *InviteCodeDynamoRepository {
	return &InviteCodeDynamoRepository{ddb: ddb, tables: tables}
}

func (r *InviteCodeDynamoRepository) Create(ctx context.Context, c entities.InviteCode) (entities.InviteCode, error) {
	av, err := attributevalue.MarshalMap(toInviteCodeItem(c))
	if err != nil {
		return entities.InviteCode{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.InviteCodes),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.InviteCode{}, interfaces.ErrDuplicateKey
		}
		return entities.InviteCode{}, err
	}
	return c, nil
}

func (r *InviteCodeDynamoRepository) GetByCode(ctx context.Context, code string) (entities.InviteCode, error) {
	it, ok, err := getItem[inviteCodeItem](ctx, r.ddb, r.tables.InviteCodes, stringKey("code", code))
	if err != nil || !ok {
		return entities.InviteCode{}, err
	}
	return fromInviteCodeItem(it), nil
}

func (r *InviteCodeDynamoRepository) ListByWorkshopID(ctx context.Context, workshopID string) ([]entities.InviteCode, error) {
	items, err := queryIndex[inviteCodeItem](ctx, r.ddb, r.tables.InviteCodes, workshopIndex, "workshop_id", workshopID)
	if err != nil {
		return nil, err
	}

	codes := make([]entities.InviteCode, 0, len(items))
	for _, it := range items {
		codes = append(codes, fromInviteCodeItem(it))
	}
	sortNewestFirst(codes, func(c entities.InviteCode) time.Time { return c.CreatedAt })
	return codes, nil
}

func (r *InviteCodeDynamoRepository) Deactivate(ctx context.Context, workshopID, code string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.InviteCodes),
		Key:                 stringKey("code", code),
		UpdateExpression:    aws.String("SET #is_active = :false"),
		ConditionExpression: aws.String("#workshop_id = :workshop AND #is_active = :true AND attribute_not_exists(#used_by)"),
		ExpressionAttributeNames: map[string]string{
			"#is_active":   "is_active",
			"#workshop_id": "workshop_id",
			"#used_by":     "used_by",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":workshop": &types.AttributeValueMemberS{Value: workshopID},
			":true":     &types.AttributeValueMemberBOOL{Value: true},
			":false":    &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func toInviteCodeItem(c entities.InviteCode) inviteCodeItem {
	return inviteCodeItem{
		Code:       c.Code,
		ID:         c.ID,
		WorkshopID: c.WorkshopID,
		CreatedBy:  c.CreatedBy,
		Active:     c.Active,
		UsedBy:     c.UsedBy,
		UsedAt:     formatTimePtr(c.UsedAt),
		CreatedAt:  formatTime(c.CreatedAt),
	}
}

func fromInviteCodeItem(it inviteCodeItem) entities.InviteCode {
	return entities.InviteCode{
		ID:         it.ID,
		Code:       it.Code,
		WorkshopID: it.WorkshopID,
		CreatedBy:  it.CreatedBy,
		Active:     it.Active,
		UsedBy:     it.UsedBy,
		UsedAt:     parseTimePtr(it.UsedAt),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}
