package policy

import (
	"context"
	"notehub-server/models"
)

// Graph is the relationship lookup the sharing policy depends on
type Graph interface {
	Status(ctx context.Context, selfID string, otherID string) (models.FriendStatus, error)
}

// Sharing decides whether share/view/edit operations on a note are permitted
type Sharing struct {
	graph Graph
}

// NewSharing builds the policy over a relationship graph
func NewSharing(g Graph) *Sharing {
	return &Sharing{graph: g}
}

// CanShare is true iff the actor owns the note and the target is a current
// friend. An owner can never be a share target of their own note.
func (s *Sharing) CanShare(ctx context.Context, ownerID string, note models.Note, targetID string) (bool, error) {

	if note.OwnerID != ownerID || targetID == ownerID {
		return false, nil
	}

	status, err := s.graph.Status(ctx, ownerID, targetID)
	if err != nil {
		return false, err
	}

	return status.IsFriend, nil
}

// CanView is true iff the viewer owns the note or holds a share grant
func CanView(viewerID string, note models.Note) bool {
	return note.OwnerID == viewerID || note.SharedWithUser(viewerID)
}

// CanEdit is true iff the viewer owns the note, or holds a share grant on a
// note whose owner enabled editing
func CanEdit(viewerID string, note models.Note) bool {
	if note.OwnerID == viewerID {
		return true
	}
	return note.SharedWithUser(viewerID) && note.AllowEditing
}
