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

type paymentItem struct {
	ID               string  `dynamodbav:"id"`
	JobID            string  `dynamodbav:"job_id"`
	Amount           float64 `dynamodbav:"amount"`
	PaymentType      string  `dynamodbav:"payment_type"`
	Notes            string  `dynamodbav:"notes"`
	CollectedBy      string  `dynamodbav:"collected_by"`
	ConfirmedByOwner bool    `dynamodbav:"confirmed_by_owner"`
	PaymentDate      string  `dynamodbav:"payment_date"`
	ConfirmationDate string  `dynamodbav:"confirmation_date,omitempty"`
}

// PaymentDynamoRepository persists payments.
//
// Table requirements:
//   - PK: id (string)
//   - GSI job_id-index: job_id
//   - GSI collected_by-index: collected_by
type PaymentDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tables Tables) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment, audit entities.JobUpdate) (entities.Payment, error) {
	put, err := putNew(r.tables.Payments, toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}
	entry, err := putNew(r.tables.JobUpdates, toJobUpdateItem(audit))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, entry},
	})
	if err != nil {
		if canceledAt(err, 0) || canceledAt(err, 1) {
			return entities.Payment{}, interfaces.ErrDuplicateKey
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	it, ok, err := getItem[paymentItem](ctx, r.ddb, r.tables.Payments, stringKey("id", id))
	if err != nil || !ok {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context, f entities.PaymentFilter) ([]entities.Payment, error) {
	var (
		items []paymentItem
		err   error
	)
	switch {
	case f.JobID != "":
		items, err = queryIndex[paymentItem](ctx, r.ddb, r.tables.Payments, jobIndex, "job_id", f.JobID)
	case f.CollectedBy != "":
		items, err = queryIndex[paymentItem](ctx, r.ddb, r.tables.Payments, collectedByIndex, "collected_by", f.CollectedBy)
	case f.JobIDs != nil:
		items, err = r.byJobs(ctx, f.JobIDs)
	default:
		return nil, interfaces.ErrUnboundedQuery
	}
	if err != nil {
		return nil, err
	}

	payments := make([]entities.Payment, 0, len(items))
	for _, it := range items {
		p := fromPaymentItem(it)
		if f.Matches(p) {
			payments = append(payments, p)
		}
	}
	sortNewestFirst(payments, func(p entities.Payment) time.Time { return p.PaymentDate })
	return payments, nil
}

func (r *PaymentDynamoRepository) byJobs(ctx context.Context, jobIDs []string) ([]paymentItem, error) {
	seen := make(map[string]bool, len(jobIDs))
	var items []paymentItem
	for _, id := range jobIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		page, err := queryIndex[paymentItem](ctx, r.ddb, r.tables.Payments, jobIndex, "job_id", id)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
	}
	return items, nil
}

func (r *PaymentDynamoRepository) Confirm(ctx context.Context, id string, at time.Time) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Payments),
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
			return entities.Payment{}, interfaces.ErrNotFound
		}
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:               p.ID,
		JobID:            p.JobID,
		Amount:           p.Amount,
		PaymentType:      p.PaymentType,
		Notes:            p.Notes,
		CollectedBy:      p.CollectedByManagerID,
		ConfirmedByOwner: p.ConfirmedByOwner,
		PaymentDate:      formatTime(p.PaymentDate),
		ConfirmationDate: formatTimePtr(p.ConfirmationDate),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                   it.ID,
		JobID:                it.JobID,
		Amount:               it.Amount,
		PaymentType:          it.PaymentType,
		Notes:                it.Notes,
		CollectedByManagerID: it.CollectedBy,
		ConfirmedByOwner:     it.ConfirmedByOwner,
		PaymentDate:          parseTime(it.PaymentDate),
		ConfirmationDate:     parseTimePtr(it.ConfirmationDate),
	}
}
