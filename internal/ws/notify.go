package ws

import (
	"encoding/json"
	"time"
)

// ProfileUpdatedEvent tells connected UIs which profile changed and at
// what revision, so they can drop local state and refetch.
type ProfileUpdatedEvent struct {
	Type      string `json:"type"`
	Profile   string `json:"profile"`
	Revision  uint64 `json:"revision"`
	Timestamp string `json:"timestamp"`
}

// NotifyProfileUpdated broadcasts a profile_updated event on the hub.
// Wired as the DocumentService mutation listener.
func NotifyProfileUpdated(h *Hub, profile string, revision uint64) {
	if h == nil || profile == "" {
		return
	}

	evt := ProfileUpdatedEvent{
		Type:      "profile_updated",
		Profile:   profile,
		Revision:  revision,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(payload)
}
