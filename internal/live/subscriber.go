package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	ws "github.com/coder/websocket"
)

const (
	pingInterval   = 30 * time.Second
	reconnectDelay = 5 * time.Second
)

// Event is a household change pushed by the backend. Known types:
// "chore.created", "chore.completed", "grocery.changed", "member.joined".
type Event struct {
	Type        string `json:"type"`
	HouseholdID string `json:"householdId"`
}

// Subscriber maintains a WebSocket subscription to one household's event
// stream and dispatches decoded events to a callback. Events are advisory:
// handlers typically trigger a session refresh or a planner reload, the
// subscriber itself never touches store state.
type Subscriber struct {
	url     string
	onEvent func(Event)
}

// NewSubscriber creates a subscriber for the given household. wsBaseURL is
// the backend's websocket origin, e.g. "wss://api.roomly.app".
func NewSubscriber(wsBaseURL, householdID string, onEvent func(Event)) *Subscriber {
	return &Subscriber{
		url:     strings.TrimRight(wsBaseURL, "/") + "/households/" + householdID + "/events",
		onEvent: onEvent,
	}
}

// Run connects and reads events until ctx is cancelled, reconnecting after a
// fixed delay on any connection failure. It blocks; run it on its own
// goroutine.
func (s *Subscriber) Run(ctx context.Context) {
	for {
		if err := s.connectAndRead(ctx); err != nil && ctx.Err() == nil {
			slog.Warn("event stream disconnected", "url", s.url, "error", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

func (s *Subscriber) connectAndRead(ctx context.Context) error {
	conn, _, err := ws.Dial(ctx, s.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close(ws.StatusNormalClosure, "")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go s.pingLoop(ctx, conn)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal(data, &ev); err != nil {
			slog.Debug("dropping malformed event", "error", err)
			continue
		}
		s.onEvent(ev)
	}
}

// pingLoop sends periodic pings to detect stale connections.
func (s *Subscriber) pingLoop(ctx context.Context, conn *ws.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
