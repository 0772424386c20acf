package events

import (
	"notehub-server/global"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Event op codes pushed to stream clients
const (
	OpFriendRequest  = 200
	OpFriendAccepted = 201
	OpRelationGone   = 202
	OpNoteShared     = 300
	OpNoteUnshared   = 301
)

// Event is the wire shape of a pushed notification
type Event struct {
	Op        int         `json:"op"`
	Timestamp int64       `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// Send encodes an event and publishes it to a user's stream connections.
// Delivery is best effort; failures are logged, never surfaced.
func (h *Hub) Send(userID string, op int, data interface{}) {

	b, err := jsoniter.Marshal(Event{
		Op:        op,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	})
	if err != nil {
		global.InternalLogger.Println("Problem: event_marshal; Error: " + err.Error())
		return
	}

	h.Publish(userID, b)
}
