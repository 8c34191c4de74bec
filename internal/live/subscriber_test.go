package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ws "github.com/coder/websocket"
)

func TestSubscriberReceivesEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/households/H/events" {
			t.Errorf("path = %q", r.URL.Path)
		}
		conn, err := ws.Accept(w, r, nil)
		if err != nil {
			t.Errorf("accept: %v", err)
			return
		}
		defer conn.Close(ws.StatusNormalClosure, "")

		payload, _ := json.Marshal(Event{Type: "chore.completed", HouseholdID: "H"})
		if err := conn.Write(r.Context(), ws.MessageText, payload); err != nil {
			t.Errorf("write: %v", err)
			return
		}
		// Hold the connection open until the subscriber is cancelled.
		conn.Read(r.Context())
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	events := make(chan Event, 1)
	sub := NewSubscriber(wsURL, "H", func(ev Event) {
		events <- ev
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sub.Run(ctx)

	select {
	case ev := <-events:
		if ev.Type != "chore.completed" || ev.HouseholdID != "H" {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for an event")
	}
}

func TestSubscriberSkipsMalformedEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(ws.StatusNormalClosure, "")

		conn.Write(r.Context(), ws.MessageText, []byte("not json"))
		payload, _ := json.Marshal(Event{Type: "grocery.changed", HouseholdID: "H"})
		conn.Write(r.Context(), ws.MessageText, payload)
		conn.Read(r.Context())
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	events := make(chan Event, 2)
	sub := NewSubscriber(wsURL, "H", func(ev Event) {
		events <- ev
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sub.Run(ctx)

	select {
	case ev := <-events:
		if ev.Type != "grocery.changed" {
			t.Errorf("event = %+v, want the malformed frame skipped", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for an event")
	}
}

func TestSubscriberURL(t *testing.T) {
	sub := NewSubscriber("wss://api.example.com/", "H-123", func(Event) {})
	want := "wss://api.example.com/households/H-123/events"
	if sub.url != want {
		t.Errorf("url = %q, want %q", sub.url, want)
	}
}
