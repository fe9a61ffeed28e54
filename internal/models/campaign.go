package models

import "time"

type CampaignStatus string

const (
	CampaignActive   CampaignStatus = "active"
	CampaignInactive CampaignStatus = "inactive"
)

// SuperboostParams is stored as-is once a campaign is boosted. Boosting is
// one-way: there is no un-boost operation.
type SuperboostParams struct {
	Type            string   `json:"type"`
	Regions         []string `json:"regions"`
	MessageTemplate string   `json:"messageTemplate,omitempty"`
	DailyLimit      int      `json:"dailyLimit,omitempty"`
}

type Campaign struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Keywords         []string          `json:"keywords"`
	Tone             int               `json:"tone"`
	Links            []string          `json:"links"`
	Status           CampaignStatus    `json:"status"`
	Superboost       bool              `json:"superboost"`
	SuperboostParams *SuperboostParams `json:"superboostParams,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	Posts            []Post            `json:"posts,omitempty"`
}
