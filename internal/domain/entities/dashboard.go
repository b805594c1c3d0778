package entities

// DashboardReport is the owner's analytics rollup.
type DashboardReport struct {
	TotalJobs      int                       `json:"total_jobs"`
	TotalRevenue   float64                   `json:"total_revenue"`
	TotalCollected float64                   `json:"total_collected"`
	TotalCredits   float64                   `json:"total_credits"`
	AvgJobValue    float64                   `json:"avg_job_value"`
	StatusCounts   map[JobStatus]int         `json:"status_counts"`
	ManagerRevenue map[string]ManagerRevenue `json:"manager_revenue"`
	DailyRevenue   map[string]float64        `json:"daily_revenue"`
}

type ManagerRevenue struct {
	Total float64 `json:"total"`
	Jobs  int     `json:"jobs"`
}

func EmptyDashboard() DashboardReport {
	return DashboardReport{
		StatusCounts:   map[JobStatus]int{},
		ManagerRevenue: map[string]ManagerRevenue{},
		DailyRevenue:   map[string]float64{},
	}
}
