package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dstanek/roomly/internal/model"
)

// Client talks to the Roomly backend. Construct one with New and inject it
// where needed; there is no package-level singleton.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu        sync.RWMutex
	profileID string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a backend client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetProfileID sets the persisted profile id sent as the identity header on
// every request. An empty id clears it.
func (c *Client) SetProfileID(id string) {
	c.mu.Lock()
	c.profileID = id
	c.mu.Unlock()
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	c.mu.RLock()
	if c.profileID != "" {
		req.Header.Set("X-Profile-ID", c.profileID)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&eb); decodeErr == nil {
			if msg := eb.Error; msg != "" {
				return fmt.Errorf("%s %s: %s", method, path, msg)
			}
			if msg := eb.Message; msg != "" {
				return fmt.Errorf("%s %s: %s", method, path, msg)
			}
		}
		return fmt.Errorf("%s %s: server returned %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*model.Profile, error) {
	var p model.Profile
	if err := c.do(ctx, http.MethodGet, "/getProfile", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// MyHouseholds fetches the households the user belongs to.
func (c *Client) MyHouseholds(ctx context.Context) ([]model.Household, error) {
	var hs []model.Household
	if err := c.do(ctx, http.MethodGet, "/my/households", nil, &hs); err != nil {
		return nil, err
	}
	return hs, nil
}

// MyInvites fetches the user's pending household invites.
func (c *Client) MyInvites(ctx context.Context) ([]model.HouseholdInvite, error) {
	var invites []model.HouseholdInvite
	if err := c.do(ctx, http.MethodGet, "/my/invites", nil, &invites); err != nil {
		return nil, err
	}
	return invites, nil
}

// CreateHouseholdRequest is the body for POST /households.
type CreateHouseholdRequest struct {
	Address        string   `json:"address"`
	RoommateEmails []string `json:"roommateEmails,omitempty"`
}

func (c *Client) CreateHousehold(ctx context.Context, req CreateHouseholdRequest) (*model.Household, error) {
	var h model.Household
	if err := c.do(ctx, http.MethodPost, "/households", req, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

type joinRequest struct {
	HomeCode string `json:"homeCode"`
}

func (c *Client) JoinHousehold(ctx context.Context, homeCode string) (*model.Household, error) {
	var h model.Household
	if err := c.do(ctx, http.MethodPost, "/households/join", joinRequest{HomeCode: homeCode}, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

func (c *Client) HouseholdMembers(ctx context.Context, householdID string) ([]model.Profile, error) {
	var members []model.Profile
	path := "/households/" + url.PathEscape(householdID) + "/members"
	if err := c.do(ctx, http.MethodGet, path, nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) HouseholdChores(ctx context.Context, householdID string) ([]model.Chore, error) {
	var chores []model.Chore
	path := "/households/" + url.PathEscape(householdID) + "/chores"
	if err := c.do(ctx, http.MethodGet, path, nil, &chores); err != nil {
		return nil, err
	}
	return chores, nil
}

// CreateChoreRequest is the body for POST /households/{id}/chores. Exactly one
// of RotateWithProfileIDs or AssigneeID is set, per the chore's mode.
type CreateChoreRequest struct {
	Title                string      `json:"title"`
	Description          string      `json:"description,omitempty"`
	DueAt                *model.Time `json:"dueAt,omitempty"`
	StartDate            string      `json:"startDate,omitempty"`
	EndDate              string      `json:"endDate,omitempty"`
	RepeatRule           string      `json:"repeatRule"`
	RotateEnabled        bool        `json:"rotateEnabled"`
	RotateWithProfileIDs []string    `json:"rotateWithProfileIds,omitempty"`
	AssigneeID           string      `json:"assigneeId,omitempty"`
	Impact               int         `json:"impact,omitempty"`
}

func (c *Client) CreateChore(ctx context.Context, householdID string, req CreateChoreRequest) (*model.Chore, error) {
	var chore model.Chore
	path := "/households/" + url.PathEscape(householdID) + "/chores"
	if err := c.do(ctx, http.MethodPost, path, req, &chore); err != nil {
		return nil, err
	}
	return &chore, nil
}

func (c *Client) CompleteChore(ctx context.Context, householdID, choreID string) error {
	path := "/households/" + url.PathEscape(householdID) + "/chores/" + url.PathEscape(choreID) + "/complete"
	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) HouseholdGroceries(ctx context.Context, householdID string) ([]model.Grocery, error) {
	var items []model.Grocery
	path := "/households/" + url.PathEscape(householdID) + "/groceries"
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddGroceryRequest is the body for POST /households/{id}/groceries.
type AddGroceryRequest struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

func (c *Client) AddGrocery(ctx context.Context, householdID string, req AddGroceryRequest) (*model.Grocery, error) {
	var item model.Grocery
	path := "/households/" + url.PathEscape(householdID) + "/groceries"
	if err := c.do(ctx, http.MethodPost, path, req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

type purchasedRequest struct {
	Purchased bool `json:"purchased"`
}

func (c *Client) SetGroceryPurchased(ctx context.Context, householdID, groceryID string, purchased bool) error {
	path := "/households/" + url.PathEscape(householdID) + "/groceries/" + url.PathEscape(groceryID)
	return c.do(ctx, http.MethodPut, path, purchasedRequest{Purchased: purchased}, nil)
}

func (c *Client) DeleteGrocery(ctx context.Context, householdID, groceryID string) error {
	path := "/households/" + url.PathEscape(householdID) + "/groceries/" + url.PathEscape(groceryID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
