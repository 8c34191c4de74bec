package model

// RepeatRules is the fixed vocabulary the backend accepts for Chore.RepeatRule.
var RepeatRules = []string{
	"never",
	"hourly",
	"daily",
	"weekdays",
	"weekends",
	"weekly",
	"biweekly",
	"monthly",
	"every 3 months",
	"every 6 months",
	"yearly",
}

// Chore is a household task. Scheduling comes from either DueAt or the
// StartDate/EndDate pair (yyyy-MM-dd), never both. When RepeatRule is
// anything but "never" the chore rotates through a server-side pool and
// AssigneeID is not the authority for current responsibility.
type Chore struct {
	ID            string `json:"id"`
	HouseholdID   string `json:"householdId"`
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	DueAt         *Time  `json:"dueAt,omitempty"`
	StartDate     string `json:"startDate,omitempty"`
	EndDate       string `json:"endDate,omitempty"`
	RepeatRule    string `json:"repeatRule"`
	RotateEnabled bool   `json:"rotateEnabled,omitempty"`
	AssigneeID    string `json:"assigneeId,omitempty"`
	Impact        int    `json:"impact"`
	CreatedAt     *Time  `json:"createdAt,omitempty"`
}
