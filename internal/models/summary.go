package models

// Summary is the dashboard overview returned by GET /dashboard/summary
type Summary struct {
	TotalLeads     int          `json:"totalLeads"`
	PendingTasks   int          `json:"pendingTasks"`
	TotalEmployees int          `json:"totalEmployees"`
	LeadsPerStage  []StageCount `json:"leadsPerStage"`
}

// StageCount is the number of leads sitting in one stage
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

// Share returns the stage's percentage of all leads, rounded to the nearest integer
func (s Summary) Share(sc StageCount) int {
	if s.TotalLeads <= 0 {
		return 0
	}
	return (sc.Count*100 + s.TotalLeads/2) / s.TotalLeads
}
