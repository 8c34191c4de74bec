package model

type Household struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Address   string `json:"address,omitempty"`
	HomeCode  string `json:"homeCode,omitempty"`
	Score     int    `json:"score"`
	CreatedAt *Time  `json:"createdAt,omitempty"`
}

type HouseholdInvite struct {
	ID               string `json:"id"`
	HouseholdID      string `json:"householdId"`
	InviterProfileID string `json:"inviterProfileId"`
	InviteeProfileID string `json:"inviteeProfileId,omitempty"`
	InviteeEmail     string `json:"inviteeEmail,omitempty"`
	Status           string `json:"status,omitempty"`
	CreatedAt        *Time  `json:"createdAt,omitempty"`
	HouseholdAddress string `json:"householdAddress,omitempty"`
}
