package models

import "time"

// Campaign represents a fundraising campaign with a goal and deadline
type Campaign struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	GoalAmount   float64   `json:"goalAmount"`
	RaisedAmount float64   `json:"raisedAmount"`
	Deadline     time.Time `json:"deadline"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ProgressPercent returns how far the campaign is towards its goal,
// capped at 100
func (c *Campaign) ProgressPercent() float64 {
	if c.GoalAmount <= 0 {
		return 0
	}
	pct := c.RaisedAmount / c.GoalAmount * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// CampaignRef is the embedded campaign reference attached to donations
type CampaignRef struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// CampaignRequest is the payload for creating or updating a campaign
type CampaignRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	GoalAmount  float64   `json:"goalAmount" validate:"required,gt=0"`
	Deadline    time.Time `json:"deadline" validate:"required"`
}
