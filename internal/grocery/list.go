package grocery

import (
	"context"
	"strings"
	"sync"

	"github.com/dstanek/roomly/internal/api"
	"github.com/dstanek/roomly/internal/model"
)

// Backend is the slice of the REST client the grocery list needs.
type Backend interface {
	HouseholdGroceries(ctx context.Context, householdID string) ([]model.Grocery, error)
	AddGrocery(ctx context.Context, householdID string, req api.AddGroceryRequest) (*model.Grocery, error)
	SetGroceryPurchased(ctx context.Context, householdID, groceryID string, purchased bool) error
	DeleteGrocery(ctx context.Context, householdID, groceryID string) error
}

// ValidationError is a local validation failure. It never reaches the backend.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// List is the per-household grocery view-model. Purchases and removals are
// optimistic with snapshot rollback, mirroring chore completion.
type List struct {
	backend     Backend
	householdID string

	mu           sync.Mutex
	items        []model.Grocery
	errorMessage string
}

// NewList creates a grocery list scoped to one household.
func NewList(backend Backend, householdID string) *List {
	return &List{backend: backend, householdID: householdID}
}

// Load fetches the household's grocery items.
func (l *List) Load(ctx context.Context) error {
	items, err := l.backend.HouseholdGroceries(ctx, l.householdID)
	if err != nil {
		return l.fail(err)
	}
	l.mu.Lock()
	l.items = make([]model.Grocery, len(items))
	copy(l.items, items)
	l.errorMessage = ""
	l.mu.Unlock()
	return nil
}

// Items returns a copy of the loaded items.
func (l *List) Items() []model.Grocery {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.Grocery, len(l.items))
	copy(out, l.items)
	return out
}

// ErrorMessage returns the last surfaced failure message, or "".
func (l *List) ErrorMessage() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errorMessage
}

func (l *List) fail(err error) error {
	l.mu.Lock()
	l.errorMessage = err.Error()
	l.mu.Unlock()
	return err
}

// Add creates a grocery item. The name must be non-blank; the category is
// guessed locally with Categorize. The created item is appended on success.
func (l *List) Add(ctx context.Context, name string, quantity int) (*model.Grocery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Message: "Enter an item name"}
	}

	item, err := l.backend.AddGrocery(ctx, l.householdID, api.AddGroceryRequest{
		Name:     name,
		Category: Categorize(name),
		Quantity: quantity,
	})
	if err != nil {
		return nil, l.fail(err)
	}

	l.mu.Lock()
	l.items = append(l.items, *item)
	l.errorMessage = ""
	l.mu.Unlock()
	return item, nil
}

func (l *List) snapshot() []model.Grocery {
	out := make([]model.Grocery, len(l.items))
	copy(out, l.items)
	return out
}

// SetPurchased flips an item's purchased flag optimistically; on backend
// failure the pre-change list is restored and the error surfaced.
func (l *List) SetPurchased(ctx context.Context, groceryID string, purchased bool) error {
	l.mu.Lock()
	snapshot := l.items
	updated := l.snapshot()
	for i := range updated {
		if updated[i].ID == groceryID {
			updated[i].Purchased = purchased
			break
		}
	}
	l.items = updated
	l.mu.Unlock()

	if err := l.backend.SetGroceryPurchased(ctx, l.householdID, groceryID, purchased); err != nil {
		l.mu.Lock()
		l.items = snapshot
		l.errorMessage = err.Error()
		l.mu.Unlock()
		return err
	}
	return nil
}

// Remove deletes an item optimistically with the same rollback contract.
func (l *List) Remove(ctx context.Context, groceryID string) error {
	l.mu.Lock()
	snapshot := l.snapshot()
	trimmed := l.items[:0:0]
	for _, item := range l.items {
		if item.ID != groceryID {
			trimmed = append(trimmed, item)
		}
	}
	l.items = trimmed
	l.mu.Unlock()

	if err := l.backend.DeleteGrocery(ctx, l.householdID, groceryID); err != nil {
		l.mu.Lock()
		l.items = snapshot
		l.errorMessage = err.Error()
		l.mu.Unlock()
		return err
	}
	return nil
}
