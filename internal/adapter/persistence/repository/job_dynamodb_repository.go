package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type jobItem struct {
	ID                    string  `dynamodbav:"id"`
	WorkshopID            string  `dynamodbav:"workshop_id"`
	ManagerID             string  `dynamodbav:"manager_id"`
	CustomerName          string  `dynamodbav:"customer_name"`
	Phone                 string  `dynamodbav:"phone"`
	Address               string  `dynamodbav:"address"`
	CarModel              string  `dynamodbav:"car_model"`
	VehicleNumber         string  `dynamodbav:"vehicle_number"`
	WorkDescription       string  `dynamodbav:"work_description"`
	EstimatedAmount       float64 `dynamodbav:"estimated_amount"`
	AdvancePaid           float64 `dynamodbav:"advance_paid"`
	PlannedCompletionDays int     `dynamodbav:"planned_completion_days"`
	PartsRequired         string  `dynamodbav:"parts_required"`
	WorkerAssigned        string  `dynamodbav:"worker_assigned"`
	InternalNotes         string  `dynamodbav:"internal_notes"`
	Status                string  `dynamodbav:"status"`
	CreatedAt             string  `dynamodbav:"created_at"`
	UpdatedAt             string  `dynamodbav:"updated_at"`
	CompletedAt           string  `dynamodbav:"completed_at,omitempty"`
}

type jobUpdateItem struct {
	ID          string `dynamodbav:"id"`
	JobID       string `dynamodbav:"job_id"`
	UpdatedBy   string `dynamodbav:"updated_by"`
	UpdateType  string `dynamodbav:"update_type"`
	Description string `dynamodbav:"description"`
	Timestamp   string `dynamodbav:"timestamp"`
}

// JobDynamoRepository persists jobs and their audit trail.
//
// Table requirements:
//   - jobs PK: id, GSI workshop_id-index: workshop_id, GSI manager_id-index: manager_id
//   - job_updates PK: id, GSI job_id-index: job_id
//
// A job write and its audit entry go in one transaction.
type JobDynamoRepository struct {
	ddb    DynamoAPI
	tables Tables
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb DynamoAPI, tables Tables) *JobDynamoRepository {
	return &JobDynamoRepository{ddb: ddb, tables: tables}
}

func (r *JobDynamoRepository) Create(ctx context.Context, j entities.Job, created entities.JobUpdate) (entities.Job, error) {
	put, err := putNew(r.tables.Jobs, toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}
	audit, err := putNew(r.tables.JobUpdates, toJobUpdateItem(created))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{put, audit},
	})
	if err != nil {
		if canceledAt(err, 0) || canceledAt(err, 1) {
			return entities.Job{}, interfaces.ErrDuplicateKey
		}
		return entities.Job{}, err
	}
	return j, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	it, ok, err := getItem[jobItem](ctx, r.ddb, r.tables.Jobs, stringKey("id", id))
	if err != nil || !ok {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) List(ctx context.Context, f entities.JobFilter) ([]entities.Job, error) {
	var (
		items []jobItem
		err   error
	)
	switch {
	case f.ManagerID != "":
		items, err = queryIndex[jobItem](ctx, r.ddb, r.tables.Jobs, managerIndex, "manager_id", f.ManagerID)
	case f.WorkshopID != "":
		items, err = queryIndex[jobItem](ctx, r.ddb, r.tables.Jobs, workshopIndex, "workshop_id", f.WorkshopID)
	default:
		return nil, interfaces.ErrUnboundedQuery
	}
	if err != nil {
		return nil, err
	}

	jobs := make([]entities.Job, 0, len(items))
	for _, it := range items {
		j := fromJobItem(it)
		if f.Matches(j) {
			jobs = append(jobs, j)
		}
	}
	sortNewestFirst(jobs, func(j entities.Job) time.Time { return j.CreatedAt })
	return jobs, nil
}

// jobPatchable lists the attributes an update may set from the job.
var jobPatchable = map[string]bool{
	"customer_name":           true,
	"phone":                   true,
	"address":                 true,
	"car_model":               true,
	"vehicle_number":          true,
	"work_description":        true,
	"estimated_amount":        true,
	"advance_paid":            true,
	"planned_completion_days": true,
	"parts_required":          true,
	"worker_assigned":         true,
	"internal_notes":          true,
	"status":                  true,
}

func (r *JobDynamoRepository) Update(ctx context.Context, j entities.Job, fields []string, modified entities.JobUpdate) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(j))
	if err != nil {
		return entities.Job{}, err
	}

	names := map[string]string{"#id": "id", "#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{":updated_at": av["updated_at"]}
	sets := []string{"#updated_at = :updated_at"}
	for i, f := range fields {
		v, ok := av[f]
		if !ok || !jobPatchable[f] {
			return entities.Job{}, fmt.Errorf("job field %q is not updatable", f)
		}
		ph := fmt.Sprintf("f%d", i)
		names["#"+ph] = f
		values[":"+ph] = v
		sets = append(sets, fmt.Sprintf("#%s = :%s", ph, ph))
	}
	if j.CompletedAt != nil {
		names["#completed_at"] = "completed_at"
		values[":completed_at"] = av["completed_at"]
		sets = append(sets, "#completed_at = if_not_exists(#completed_at, :completed_at)")
	}

	update := types.TransactWriteItem{Update: &types.Update{
		TableName:                 aws.String(r.tables.Jobs),
		Key:                       stringKey("id", j.ID),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}}
	audit, err := putNew(r.tables.JobUpdates, toJobUpdateItem(modified))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{update, audit},
	})
	if err != nil {
		if canceledAt(err, 0) {
			return entities.Job{}, interfaces.ErrNotFound
		}
		if canceledAt(err, 1) {
			return entities.Job{}, interfaces.ErrDuplicateKey
		}
		return entities.Job{}, err
	}

	it, ok, err := getItem[jobItem](ctx, r.ddb, r.tables.Jobs, stringKey("id", j.ID))
	if err != nil {
		return entities.Job{}, err
	}
	if !ok {
		return entities.Job{}, interfaces.ErrNotFound
	}
	return fromJobItem(it), nil
}

func (r *JobDynamoRepository) ListUpdates(ctx context.Context, jobID string) ([]entities.JobUpdate, error) {
	items, err := queryIndex[jobUpdateItem](ctx, r.ddb, r.tables.JobUpdates, jobIndex, "job_id", jobID)
	if err != nil {
		return nil, err
	}

	updates := make([]entities.JobUpdate, 0, len(items))
	for _, it := range items {
		updates = append(updates, fromJobUpdateItem(it))
	}
	sortNewestFirst(updates, func(u entities.JobUpdate) time.Time { return u.Timestamp })
	return updates, nil
}

func toJobItem(j entities.Job) jobItem {
	return jobItem{
		ID:                    j.ID,
		WorkshopID:            j.WorkshopID,
		ManagerID:             j.ManagerID,
		CustomerName:          j.CustomerName,
		Phone:                 j.Phone,
		Address:               j.Address,
		CarModel:              j.CarModel,
		VehicleNumber:         j.VehicleNumber,
		WorkDescription:       j.WorkDescription,
		EstimatedAmount:       j.EstimatedAmount,
		AdvancePaid:           j.AdvancePaid,
		PlannedCompletionDays: j.PlannedCompletionDays,
		PartsRequired:         j.PartsRequired,
		WorkerAssigned:        j.WorkerAssigned,
		InternalNotes:         j.InternalNotes,
		Status:                string(j.Status),
		CreatedAt:             formatTime(j.CreatedAt),
		UpdatedAt:             formatTime(j.UpdatedAt),
		CompletedAt:           formatTimePtr(j.CompletedAt),
	}
}

func fromJobItem(it jobItem) entities.Job {
	return entities.Job{
		ID:                    it.ID,
		WorkshopID:            it.WorkshopID,
		ManagerID:             it.ManagerID,
		CustomerName:          it.CustomerName,
		Phone:                 it.Phone,
		Address:               it.Address,
		CarModel:              it.CarModel,
		VehicleNumber:         it.VehicleNumber,
		WorkDescription:       it.WorkDescription,
		EstimatedAmount:       it.EstimatedAmount,
		AdvancePaid:           it.AdvancePaid,
		PlannedCompletionDays: it.PlannedCompletionDays,
		PartsRequired:         it.PartsRequired,
		WorkerAssigned:        it.WorkerAssigned,
		InternalNotes:         it.InternalNotes,
		Status:                entities.JobStatus(it.Status),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
		CompletedAt:           parseTimePtr(it.CompletedAt),
	}
}

func toJobUpdateItem(u entities.JobUpdate) jobUpdateItem {
	return jobUpdateItem{
		ID:          u.ID,
		JobID:       u.JobID,
		UpdatedBy:   u.UpdatedBy,
		UpdateType:  string(u.UpdateType),
		Description: u.Description,
		Timestamp:   formatTime(u.Timestamp),
	}
}

func fromJobUpdateItem(it jobUpdateItem) entities.JobUpdate {
	return entities.JobUpdate{
		ID:          it.ID,
		JobID:       it.JobID,
		UpdatedBy:   it.UpdatedBy,
		UpdateType:  entities.JobUpdateType(it.UpdateType),
		Description: it.Description,
		Timestamp:   parseTime(it.Timestamp),
	}
}
