package repository

import (
	"context"
	"strings"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type userItem struct {
	ID           string `dynamodbav:"id"`
	Email        string `dynamodbav:"email"`
	PasswordHash string `dynamodbav:"password_hash"`
	Name         string `dynamodbav:"name"`
	Phone        string `dynamodbav:"phone"`
	Role         string `dynamodbav:"role"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// UserDynamoRepository persists accounts.
//
// Table requirements:
//   - PK: id (string)
//   - GSI email-index: email
//
// Email uniqueness is held by a guard item "email#<email>" written in the
// same transaction as the account.
type UserDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tables Tables) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tables: tables}
}

func emailGuardID(email string) string {
	return "email#" + strings.ToLower(email)
}

func (r *UserDynamoRepository) userSteps(u entities.User) ([]types.TransactWriteItem, error) {
	put, err := putNew(r.tables.Users, toUserItem(u))
	if err != nil {
		return nil, err
	}
	guard, err := putGuard(r.tables.Users, emailGuardID(u.Email), u.ID)
	if err != nil {
		return nil, err
	}
	return []types.TransactWriteItem{put, guard}, nil
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)
	steps, err := r.userSteps(u)
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: steps})
	if err != nil {
		if canceledAt(err, 0) || canceledAt(err, 1) {
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) CreateManager(ctx context.Context, u entities.User, code string, binding entities.ManagerBinding, usedAt time.Time) (entities.User, error) {
	u.Email = strings.ToLower(u.Email)

	consume := types.TransactWriteItem{Update: &types.Update{
		TableName:           aws.String(r.tables.InviteCodes),
		Key:                 stringKey("code", code),
		UpdateExpression:    aws.String("SET #used_by = :user, #used_at = :at"),
		ConditionExpression: aws.String("attribute_exists(#code) AND #is_active = :true AND attribute_not_exists(#used_by)"),
		ExpressionAttributeNames: map[string]string{
			"#code":      "code",
			"#is_active": "is_active",
			"#used_by":   "used_by",
			"#used_at":   "used_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: u.ID},
			":at":   &types.AttributeValueMemberS{Value: formatTime(usedAt)},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	}}
	bind, err := putNew(r.tables.Managers, toManagerItem(binding))
	if err != nil {
		return entities.User{}, err
	}
	steps, err := r.userSteps(u)
	if err != nil {
		return entities.User{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: append([]types.TransactWriteItem{consume, bind}, steps...),
	})
	if err != nil {
		switch {
		case canceledAt(err, 0):
			return entities.User{}, interfaces.ErrInviteUnavailable
		case canceledAt(err, 1), canceledAt(err, 2), canceledAt(err, 3):
			return entities.User{}, interfaces.ErrDuplicateKey
		}
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	it, ok, err := getItem[userItem](ctx, r.ddb, r.tables.Users, stringKey("id", id))
	if err != nil || !ok {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	items, err := queryIndex[userItem](ctx, r.ddb, r.tables.Users, emailIndex, "email", strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return entities.User{}, err
	}
	if len(items) == 0 {
		return entities.User{}, nil
	}
	return fromUserItem(items[0]), nil
}

func (r *UserDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.User, error) {
	if len(ids) == 0 {
		return []entities.User{}, nil
	}
	items, err := batchGet[userItem](ctx, r.ddb, r.tables.Users, "id", ids)
	if err != nil {
		return nil, err
	}

	users := make([]entities.User, 0, len(items))
	for _, it := range items {
		if it.Email == "" {
			continue
		}
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

func toUserItem(u entities.User) userItem {
	return userItem{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Phone:        u.Phone,
		Role:         string(u.Role),
		CreatedAt:    formatTime(u.CreatedAt),
	}
}

func fromUserItem(it userItem) entities.User {
	return entities.User{
		ID:           it.ID,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		Name:         it.Name,
		Phone:        it.Phone,
		Role:         entities.Role(it.Role),
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
