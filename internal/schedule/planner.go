package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/dstanek/roomly/internal/api"
	"github.com/dstanek/roomly/internal/model"
)

// Backend is the slice of the REST client the planner needs.
type Backend interface {
	HouseholdChores(ctx context.Context, householdID string) ([]model.Chore, error)
	HouseholdMembers(ctx context.Context, householdID string) ([]model.Profile, error)
	CreateChore(ctx context.Context, householdID string, req api.CreateChoreRequest) (*model.Chore, error)
	CompleteChore(ctx context.Context, householdID, choreID string) error
}

// Planner is the per-household chore view-model. It is created for a
// household selection and discarded when the selection changes; Load fetches
// its chore and member lists.
type Planner struct {
	backend     Backend
	householdID string

	mu           sync.Mutex
	chores       []model.Chore
	members      []model.Profile
	errorMessage string
}

// NewPlanner creates a planner scoped to one household.
func NewPlanner(backend Backend, householdID string) *Planner {
	return &Planner{backend: backend, householdID: householdID}
}

// HouseholdID returns the household this planner is scoped to.
func (p *Planner) HouseholdID() string {
	return p.householdID
}

// Load fetches the household's chores and members. Either failure aborts and
// is surfaced; previously loaded state is retained.
func (p *Planner) Load(ctx context.Context) error {
	chores, err := p.backend.HouseholdChores(ctx, p.householdID)
	if err != nil {
		return p.fail(err)
	}
	members, err := p.backend.HouseholdMembers(ctx, p.householdID)
	if err != nil {
		return p.fail(err)
	}

	p.mu.Lock()
	p.chores = chores
	p.members = members
	p.errorMessage = ""
	p.mu.Unlock()
	return nil
}

// Chores returns a copy of the loaded chore list.
func (p *Planner) Chores() []model.Chore {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Chore, len(p.chores))
	copy(out, p.chores)
	return out
}

// Members returns a copy of the loaded member list.
func (p *Planner) Members() []model.Profile {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.Profile, len(p.members))
	copy(out, p.members)
	return out
}

// ErrorMessage returns the last surfaced failure message, or "".
func (p *Planner) ErrorMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.errorMessage
}

// Upcoming returns the filtered, sorted view of the loaded chores.
func (p *Planner) Upcoming(w Window, now time.Time) []model.Chore {
	return FilteredChores(p.Chores(), w, now)
}

func (p *Planner) fail(err error) error {
	p.mu.Lock()
	p.errorMessage = err.Error()
	p.mu.Unlock()
	return err
}

// CompleteChore optimistically removes the chore from the local list, then
// calls the backend. On failure the pre-removal list is restored from a value
// snapshot (not incremental undo) and the error is surfaced. One attempt, no
// retry.
func (p *Planner) CompleteChore(ctx context.Context, choreID string) error {
	p.mu.Lock()
	snapshot := make([]model.Chore, len(p.chores))
	copy(snapshot, p.chores)

	trimmed := p.chores[:0:0]
	for _, c := range p.chores {
		if c.ID != choreID {
			trimmed = append(trimmed, c)
		}
	}
	p.chores = trimmed
	p.mu.Unlock()

	if err := p.backend.CompleteChore(ctx, p.householdID, choreID); err != nil {
		p.mu.Lock()
		p.chores = snapshot
		p.errorMessage = err.Error()
		p.mu.Unlock()
		return err
	}
	return nil
}
