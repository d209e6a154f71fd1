package models

// Funnel is a sales pipeline as returned by the CRM backend.
// List responses carry no stages; detail responses carry stages and leads.
type Funnel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Icon        string   `json:"icon,omitempty"`
	Color       string   `json:"color,omitempty"`
	Stages      []*Stage `json:"stages,omitempty"`
}

// Stage is one column of a funnel
type Stage struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Leads []*Lead `json:"leads,omitempty"`
}

// Lead is a prospect tracked through a funnel
type Lead struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	SourceChannel string `json:"sourceChannel,omitempty"`
	StageID       string `json:"stageId,omitempty"`
	FunnelID      string `json:"funnelId,omitempty"`
	Responsible   *User  `json:"responsible,omitempty"`
}

// LeadCount returns the number of leads across all stages
func (f *Funnel) LeadCount() int {
	total := 0
	for _, stage := range f.Stages {
		total += len(stage.Leads)
	}
	return total
}
