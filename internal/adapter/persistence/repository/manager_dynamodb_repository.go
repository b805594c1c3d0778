package repository

import (
	"context"
	"sort"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type managerItem struct {
	ID          string          `dynamodbav:"id"`
	UserID      string          `dynamodbav:"user_id"`
	WorkshopID  string          `dynamodbav:"workshop_id"`
	JoinedAt    string          `dynamodbav:"joined_at"`
	Active      bool            `dynamodbav:"is_active"`
	Permissions map[string]bool `dynamodbav:"permissions"`
}

// ManagerDynamoRepository persists manager bindings. Bindings are written
// by UserDynamoRepository.CreateManager.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index: user_id
//   - GSI workshop_id-index: workshop_id
type ManagerDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IManagerRepository = (*ManagerDynamoRepository)(nil)

func NewManagerDynamoRepository(ddb DynamoAPI, tables Tables) *ManagerDynamoRepository {
	return &ManagerDynamoRepository{ddb: ddb, tables: tables}
}

func (r *ManagerDynamoRepository) GetActiveByUserID(ctx context.Context, userID string) (entities.ManagerBinding, error) {
	items, err := queryIndex[managerItem](ctx, r.ddb, r.tables.Managers, userIndex, "user_id", userID)
	if err != nil {
		return entities.ManagerBinding{}, err
	}
	for _, it := range items {
		if it.Active {
			return fromManagerItem(it), nil
		}
	}
	return entities.ManagerBinding{}, nil
}

func (r *ManagerDynamoRepository) ListActiveByWorkshopID(ctx context.Context, workshopID string) ([]entities.ManagerBinding, error) {
	items, err := queryIndex[managerItem](ctx, r.ddb, r.tables.Managers, workshopIndex, "workshop_id", workshopID)
	if err != nil {
		return nil, err
	}

	bindings := make([]entities.ManagerBinding, 0, len(items))
	for _, it := range items {
		if it.Active {
			bindings = append(bindings, fromManagerItem(it))
		}
	}
	sort.SliceStable(bindings, func(a, b int) bool { return bindings[a].JoinedAt.Before(bindings[b].JoinedAt) })
	return bindings, nil
}

func (r *ManagerDynamoRepository) Deactivate(ctx context.Context, workshopID, bindingID string) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Managers),
		Key:                 stringKey("id", bindingID),
		UpdateExpression:    aws.String("SET #is_active = :false"),
		ConditionExpression: aws.String("#workshop_id = :workshop AND #is_active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#is_active":   "is_active",
			"#workshop_id": "workshop_id",
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

func toManagerItem(b entities.ManagerBinding) managerItem {
	return managerItem{
		ID:          b.ID,
		UserID:      b.UserID,
		WorkshopID:  b.WorkshopID,
		JoinedAt:    formatTime(b.JoinedAt),
		Active:      b.Active,
		Permissions: b.Permissions,
	}
}

func fromManagerItem(it managerItem) entities.ManagerBinding {
	perms := it.Permissions
	if perms == nil {
		perms = map[string]bool{}
	}
	return entities.ManagerBinding{
		ID:          it.ID,
		UserID:      it.UserID,
		WorkshopID:  it.WorkshopID,
		JoinedAt:    parseTime(it.JoinedAt),
		Active:      it.Active,
		Permissions: perms,
	}
}
