package models

import "time"

// RelationState is the tagged state of one direction of a relationship edge.
// Both mirrored rows of a pair are always written in one batch, so a pair is
// either absent, pending (out on one side, in on the other) or friends on
// both sides.
type RelationState string

const (
	StatePendingOut RelationState = "pending_out"
	StatePendingIn  RelationState = "pending_in"
	StateFriend     RelationState = "friend"
)

// Relation is one user's view of a relationship edge, with the peer profile
// denormalized into the row
type Relation struct {
	UserID  string
	PeerID  string
	State   RelationState
	Peer    PublicUser
	Created time.Time
}

// FriendStatus annotates user listings with the relation to the viewer
type FriendStatus struct {
	IsFriend           bool
	HasIncomingRequest bool
	HasSentRequest     bool
}
