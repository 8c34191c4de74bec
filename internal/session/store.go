package session

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dstanek/roomly/internal/api"
	"github.com/dstanek/roomly/internal/model"
)

// Backend is the slice of the REST client the session store needs. *api.Client
// satisfies it; tests substitute a fake.
type Backend interface {
	GetProfile(ctx context.Context) (*model.Profile, error)
	MyHouseholds(ctx context.Context) ([]model.Household, error)
	MyInvites(ctx context.Context) ([]model.HouseholdInvite, error)
	CreateHousehold(ctx context.Context, req api.CreateHouseholdRequest) (*model.Household, error)
	JoinHousehold(ctx context.Context, homeCode string) (*model.Household, error)
}

// Prefs is the slice of the preference store the session store needs.
type Prefs interface {
	SelectedHousehold() (string, error)
	SetSelectedHousehold(id string) error
	ClearSelectedHousehold() error
	Clear() error
}

// ValidationError is a local validation failure. It never reaches the backend
// and its message is shown to the user as-is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Store is the single source of truth for the authenticated user's profile,
// household list, pending invites, and the currently selected household.
//
// The households slice and the selection are owned exclusively by the store;
// everything else reads them through the accessors. Concurrent Refresh calls
// are not cancelled or coalesced: writes are serialized by the mutex and the
// last completed call wins.
type Store struct {
	backend Backend
	prefs   Prefs

	mu                  sync.Mutex
	profile             *model.Profile
	households          []model.Household
	invites             []model.HouseholdInvite
	selectedHouseholdID string
	errorMessage        string

	onSelectionChanged func(householdID string)
}

// New creates a session store. The persisted household selection, if any, is
// rehydrated immediately; Refresh reconciles it against the server's list.
func New(backend Backend, prefs Prefs) (*Store, error) {
	selected, err := prefs.SelectedHousehold()
	if err != nil {
		return nil, err
	}
	return &Store{
		backend:             backend,
		prefs:               prefs,
		selectedHouseholdID: selected,
	}, nil
}

// OnSelectionChanged registers the hook fired after every selection change.
// Views use it to reload household-scoped data (chores, members, groceries).
// The hook runs synchronously on the mutating call, outside the store's lock.
func (s *Store) OnSelectionChanged(fn func(householdID string)) {
	s.mu.Lock()
	s.onSelectionChanged = fn
	s.mu.Unlock()
}

// Profile returns the cached profile, or nil before the first refresh.
func (s *Store) Profile() *model.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Households returns a copy of the household list.
func (s *Store) Households() []model.Household {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Household, len(s.households))
	copy(out, s.households)
	return out
}

// Invites returns a copy of the pending invite list.
func (s *Store) Invites() []model.HouseholdInvite {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HouseholdInvite, len(s.invites))
	copy(out, s.invites)
	return out
}

// SelectedHouseholdID returns the current selection, or "" when none.
func (s *Store) SelectedHouseholdID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedHouseholdID
}

// SelectedHousehold resolves the selection against the household list by id.
// It returns nil when nothing is selected or the id is not (yet) in the list.
func (s *Store) SelectedHousehold() *model.Household {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.households {
		if s.households[i].ID == s.selectedHouseholdID {
			h := s.households[i]
			return &h
		}
	}
	return nil
}

// ErrorMessage returns the last surfaced failure message, or "" after a
// successful operation.
func (s *Store) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorMessage
}

func (s *Store) fail(err error) error {
	s.mu.Lock()
	s.errorMessage = err.Error()
	s.mu.Unlock()
	return err
}

// Refresh fetches profile, households, and invites, in that order, and
// reconciles the household selection. A failed step aborts and surfaces its
// error; steps already applied are retained in memory.
func (s *Store) Refresh(ctx context.Context) error {
	profile, err := s.backend.GetProfile(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.profile = profile
	s.mu.Unlock()

	households, err := s.backend.MyHouseholds(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.households = households
	previous := s.selectedHouseholdID
	reconciled := reconcileSelection(previous, households)
	s.selectedHouseholdID = reconciled
	s.mu.Unlock()

	if reconciled != previous {
		if err := s.persistSelection(reconciled); err != nil {
			return s.fail(err)
		}
		slog.Debug("household selection reconciled", "previous", previous, "selected", reconciled)
	}

	invites, err := s.backend.MyInvites(ctx)
	if err != nil {
		return s.fail(err)
	}

	s.mu.Lock()
	s.invites = invites
	s.errorMessage = ""
	s.mu.Unlock()
	return nil
}

// reconcileSelection keeps the selection when its id is still present,
// otherwise falls back to the first household's id, or "" for an empty list.
// The selection is a weak reference by id, never a pointer into the list.
func reconcileSelection(selected string, households []model.Household) string {
	if selected != "" {
		for i := range households {
			if households[i].ID == selected {
				return selected
			}
		}
	}
	if len(households) > 0 {
		return households[0].ID
	}
	return ""
}

func (s *Store) persistSelection(id string) error {
	if id == "" {
		return s.prefs.ClearSelectedHousehold()
	}
	return s.prefs.SetSelectedHousehold(id)
}

// SelectHousehold sets the selection unconditionally, persists it, and fires
// the selection-changed hook. The id is not validated against the household
// list; Refresh reconciles stale ids.
func (s *Store) SelectHousehold(id string) error {
	s.mu.Lock()
	s.selectedHouseholdID = id
	hook := s.onSelectionChanged
	s.mu.Unlock()

	if err := s.persistSelection(id); err != nil {
		return s.fail(err)
	}
	if hook != nil {
		hook(id)
	}
	return nil
}

// CreateHousehold creates a household, refreshes, and selects it. The address
// must be non-empty after trimming; roommate emails are trimmed with empties
// dropped, and omitted entirely when none remain.
func (s *Store) CreateHousehold(ctx context.Context, address string, roommateEmails []string) (*model.Household, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &ValidationError{Message: "Enter your household address"}
	}

	var emails []string
	for _, e := range roommateEmails {
		if trimmed := strings.TrimSpace(e); trimmed != "" {
			emails = append(emails, trimmed)
		}
	}

	created, err := s.backend.CreateHousehold(ctx, api.CreateHouseholdRequest{
		Address:        address,
		RoommateEmails: emails,
	})
	if err != nil {
		return nil, s.fail(err)
	}

	return s.adopt(ctx, created)
}

// JoinHousehold joins by home code, refreshes, and selects the household.
func (s *Store) JoinHousehold(ctx context.Context, homeCode string) (*model.Household, error) {
	homeCode = strings.TrimSpace(homeCode)
	if utf8.RuneCountInString(homeCode) != 6 {
		return nil, &ValidationError{Message: "Enter a 6-digit home code"}
	}

	joined, err := s.backend.JoinHousehold(ctx, homeCode)
	if err != nil {
		return nil, s.fail(err)
	}

	return s.adopt(ctx, joined)
}

// adopt runs the post-create/join sequence: full refresh, then select the new
// household. A failed refresh is surfaced through ErrorMessage but does not
// undo the backend's successful mutation, so the household is still returned.
func (s *Store) adopt(ctx context.Context, h *model.Household) (*model.Household, error) {
	if err := s.Refresh(ctx); err != nil {
		slog.Warn("refresh after household mutation failed", "household_id", h.ID, "error", err)
	}
	if err := s.SelectHousehold(h.ID); err != nil {
		return nil, err
	}
	return h, nil
}

// Logout clears all in-memory state and wipes the persisted ids. The caller
// is responsible for signing out of the auth provider.
func (s *Store) Logout() error {
	s.mu.Lock()
	s.profile = nil
	s.households = nil
	s.invites = nil
	s.selectedHouseholdID = ""
	s.errorMessage = ""
	s.mu.Unlock()

	return s.prefs.Clear()
}
