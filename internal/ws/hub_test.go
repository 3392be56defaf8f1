package ws

import (
	"encoding/json"
	"testing"
)

func TestHubPublishFanout(t *testing.T) {
	hub := NewHub()

	a := &Client{UserID: "u1", Send: make(chan []byte, 1), hub: hub}
	b := &Client{UserID: "u1", Send: make(chan []byte, 1), hub: hub}
	other := &Client{UserID: "u2", Send: make(chan []byte, 1), hub: hub}
	hub.Register(a)
	hub.Register(b)
	hub.Register(other)

	hub.Publish("u1", map[string]string{"type": "xp_gained"})

	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.Send:
			var payload map[string]string
			if err := json.Unmarshal(msg, &payload); err != nil {
				t.Fatalf("bad payload: %v", err)
			}
			if payload["type"] != "xp_gained" {
				t.Errorf("type = %q", payload["type"])
			}
		default:
			t.Fatal("client did not receive event")
		}
	}

	select {
	case <-other.Send:
		t.Error("other user received event")
	default:
	}
}

func TestHubPublishNoSubscribers(t *testing.T) {
	hub := NewHub()
	// must not panic or block
	hub.Publish("nobody", map[string]string{"type": "level_up"})
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub()
	c := &Client{UserID: "u1", Send: make(chan []byte, 1), hub: hub}
	hub.Register(c)
	hub.Unregister(c)

	hub.Publish("u1", map[string]string{"type": "xp_gained"})
	select {
	case <-c.Send:
		t.Error("unregistered client received event")
	default:
	}
}
