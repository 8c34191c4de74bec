package model

// Profile is the backend's identity record. Cached read-only on the client;
// the backend owns every field.
type Profile struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName,omitempty"`
	LastName    string   `json:"lastName,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	Balance     *float64 `json:"balance,omitempty"`
	UserScore   *int     `json:"userScore,omitempty"`
}

// DisplayName returns "First Last" when available, falling back to the email.
func (p Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Email
	}
}
