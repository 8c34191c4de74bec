package model

type Grocery struct {
	ID               string `json:"id"`
	HouseholdID      string `json:"householdId"`
	Name             string `json:"name"`
	Category         string `json:"category,omitempty"`
	Quantity         int    `json:"quantity,omitempty"`
	Purchased        bool   `json:"purchased"`
	AddedByProfileID string `json:"addedByProfileId,omitempty"`
	CreatedAt        *Time  `json:"createdAt,omitempty"`
}
