package usecase

import (
	"context"
	"time"
	"workshop_jobs/internal/domain/entities"
	"workshop_jobs/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	dailyRevenueDays = 30
	dayLayout        = "2006-01-02"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// IAnalyticsUseCase exposes the owner's rollups and exports.
type IAnalyticsUseCase interface {
	Dashboard(ctx context.Context, caller entities.User) (entities.DashboardReport, error)
	ExportJobs(ctx context.Context, caller entities.User) (Document, error)
}

type AnalyticsUseCase struct {
	jobs     interfaces.IJobRepository
	payments interfaces.IPaymentRepository
	exporter interfaces.ISpreadsheetExporter
	scopes   *ScopeResolver
	log      logrus.FieldLogger
	now      func() time.Time
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(
	jobs interfaces.IJobRepository,
	payments interfaces.IPaymentRepository,
	exporter interfaces.ISpreadsheetExporter,
	scopes *ScopeResolver,
	log logrus.FieldLogger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		jobs:     jobs,
		payments: payments,
		exporter: exporter,
		scopes:   scopes,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Dashboard returns a zeroed report for an owner without a workshop.
func (u *AnalyticsUseCase) Dashboard(ctx context.Context, caller entities.User) (entities.DashboardReport, error) {
	if caller.Role != entities.RoleOwner {
		return entities.DashboardReport{}, ErrOwnerOnly
	}
	scope, err := u.scopes.Resolve(ctx, caller)
	if err != nil {
		return entities.DashboardReport{}, err
	}
	if !scope.HasWorkshop() {
		return entities.EmptyDashboard(), nil
	}

	jobs, err := u.jobs.List(ctx, entities.JobFilter{WorkshopID: scope.WorkshopID()})
	if err != nil {
		return entities.DashboardReport{}, err
	}

	var payments []entities.Payment
	if len(jobs) > 0 {
		ids := make([]string, 0, len(jobs))
		for _, j := range jobs {
			ids = append(ids, j.ID)
		}
		if payments, err = u.payments.List(ctx, entities.PaymentFilter{JobIDs: ids}); err != nil {
			return entities.DashboardReport{}, err
		}
	}

	return buildDashboard(jobs, payments, u.now()), nil
}

func buildDashboard(jobs []entities.Job, payments []entities.Payment, now time.Time) entities.DashboardReport {
	report := entities.EmptyDashboard()

	today := now.UTC().Truncate(24 * time.Hour)
	for i := 0; i < dailyRevenueDays; i++ {
		report.DailyRevenue[today.AddDate(0, 0, -i).Format(dayLayout)] = 0
	}

	revenue := decimal.Zero
	daily := map[string]decimal.Decimal{}
	managerTotals := map[string]decimal.Decimal{}

	for _, j := range jobs {
		amount := decimal.NewFromFloat(j.EstimatedAmount)
		revenue = revenue.Add(amount)
		report.StatusCounts[j.Status]++

		mr := report.ManagerRevenue[j.ManagerID]
		mr.Jobs++
		report.ManagerRevenue[j.ManagerID] = mr
		managerTotals[j.ManagerID] = managerTotals[j.ManagerID].Add(amount)

		day := j.CreatedAt.UTC().Format(dayLayout)
		if _, ok := report.DailyRevenue[day]; ok {
			daily[day] = daily[day].Add(amount)
		}
	}

	for id, total := range managerTotals {
		mr := report.ManagerRevenue[id]
		mr.Total = total.InexactFloat64()
		report.ManagerRevenue[id] = mr
	}
	for day, total := range daily {
		report.DailyRevenue[day] = total.InexactFloat64()
	}

	collected := decimal.NewFromFloat(entities.TotalPaid(payments))

	report.TotalJobs = len(jobs)
	report.TotalRevenue = revenue.InexactFloat64()
	report.TotalCollected = collected.InexactFloat64()
	report.TotalCredits = revenue.Sub(collected).InexactFloat64()
	if len(jobs) > 0 {
		report.AvgJobValue = revenue.Div(decimal.NewFromInt(int64(len(jobs)))).InexactFloat64()
	}
	return report
}

func (u *AnalyticsUseCase) ExportJobs(ctx context.Context, caller entities.User) (Document, error) {
	scope, err := u.scopes.OwnerWorkshop(ctx, caller)
	if err != nil {
		return Document{}, err
	}

	jobs, err := u.jobs.List(ctx, entities.JobFilter{WorkshopID: scope.WorkshopID()})
	if err != nil {
		return Document{}, err
	}

	body, err := u.exporter.Jobs(jobs)
	if err != nil {
		return Document{}, err
	}

	u.log.WithFields(logrus.Fields{"workshop_id": scope.WorkshopID(), "jobs": len(jobs)}).Info("[analytics][usecase] jobs exported")
	return Document{
		Filename:    "jobs_export_" + u.now().Format("20060102") + ".xlsx",
		ContentType: xlsxContentType,
		Body:        body,
	}, nil
}
