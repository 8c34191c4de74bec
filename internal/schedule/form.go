package schedule

import (
	"context"
	"strings"
	"time"

	"github.com/dstanek/roomly/internal/api"
	"github.com/dstanek/roomly/internal/model"
)

// ValidationError is a local validation failure. It never reaches the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Form composes a new chore. The repeat rule decides the assignment mode:
// rotation (a pool of candidate members) or single-responsible (exactly one
// assignee). Switching modes re-applies the mode's defaults.
type Form struct {
	backend     Backend
	householdID string

	Title       string
	Description string
	DueAt       *time.Time
	StartDate   string
	EndDate     string
	Impact      int

	repeatRule string
	members    []model.Profile
	pool       []string
	assigneeID string
}

// NewForm creates a chore form for the given household. The repeat rule
// starts at "never" (single-responsible mode).
func NewForm(backend Backend, householdID string) *Form {
	return &Form{
		backend:     backend,
		householdID: householdID,
		repeatRule:  "never",
	}
}

// RepeatRule returns the current repeat rule.
func (f *Form) RepeatRule() string {
	return f.repeatRule
}

// RotationEnabled reports whether the form is in rotation mode.
func (f *Form) RotationEnabled() bool {
	return RotationEnabled(f.repeatRule)
}

// SetMembers installs the fetched member list and applies the current mode's
// assignment defaults.
func (f *Form) SetMembers(members []model.Profile) {
	f.members = members
	f.applyDefaults()
}

// SetRepeatRule changes the repeat rule. Crossing the rotation boundary
// re-applies assignment defaults for the new mode.
func (f *Form) SetRepeatRule(rule string) {
	wasRotation := f.RotationEnabled()
	f.repeatRule = rule
	if f.RotationEnabled() != wasRotation {
		f.applyDefaults()
	}
}

// applyDefaults resets the assignment selection per the current mode:
// rotation defaults to every member in the pool, single-responsible defaults
// to the first fetched member.
func (f *Form) applyDefaults() {
	f.pool = nil
	f.assigneeID = ""
	if len(f.members) == 0 {
		return
	}
	if f.RotationEnabled() {
		for _, m := range f.members {
			f.pool = append(f.pool, m.ID)
		}
		return
	}
	f.assigneeID = f.members[0].ID
}

// Pool returns the rotation pool's profile ids.
func (f *Form) Pool() []string {
	out := make([]string, len(f.pool))
	copy(out, f.pool)
	return out
}

// AssigneeID returns the single-responsible selection.
func (f *Form) AssigneeID() string {
	return f.assigneeID
}

// ToggleMember adds or removes a member from the rotation pool. No-op in
// single-responsible mode.
func (f *Form) ToggleMember(profileID string) {
	if !f.RotationEnabled() {
		return
	}
	for i, id := range f.pool {
		if id == profileID {
			f.pool = append(f.pool[:i], f.pool[i+1:]...)
			return
		}
	}
	f.pool = append(f.pool, profileID)
}

// SetAssignee picks the responsible member. No-op in rotation mode.
func (f *Form) SetAssignee(profileID string) {
	if f.RotationEnabled() {
		return
	}
	f.assigneeID = profileID
}

// Validate checks the form can be submitted: non-blank title, a loaded member
// list, and a complete mode-appropriate assignment.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Message: "Enter a chore title"}
	}
	if len(f.members) == 0 {
		return &ValidationError{Message: "No household members loaded"}
	}
	if f.RotationEnabled() {
		if len(f.pool) == 0 {
			return &ValidationError{Message: "Pick at least one member to rotate with"}
		}
		return nil
	}
	if f.assigneeID == "" {
		return &ValidationError{Message: "Pick who is responsible"}
	}
	return nil
}

// Payload builds the create request. Rotation mode sends the pool, single
// mode sends the assignee; never both.
func (f *Form) Payload() api.CreateChoreRequest {
	req := api.CreateChoreRequest{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		StartDate:   f.StartDate,
		EndDate:     f.EndDate,
		RepeatRule:  f.repeatRule,
		Impact:      f.Impact,
	}
	if f.DueAt != nil {
		req.DueAt = &model.Time{Time: *f.DueAt}
	}
	if f.RotationEnabled() {
		req.RotateEnabled = true
		req.RotateWithProfileIDs = f.Pool()
	} else {
		req.AssigneeID = f.assigneeID
	}
	return req
}

// Submit validates and creates the chore.
func (f *Form) Submit(ctx context.Context) (*model.Chore, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.backend.CreateChore(ctx, f.householdID, f.Payload())
}
