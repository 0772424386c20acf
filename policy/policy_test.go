package policy

import (
	"context"
	"notehub-server/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGraph struct {
	friends map[string]bool
}

func (fg *fakeGraph) Status(ctx context.Context, selfID string, otherID string) (models.FriendStatus, error) {
	return models.FriendStatus{IsFriend: fg.friends[selfID+":"+otherID]}, nil
}

func TestCanShareRequiresOwnershipAndFriendship(t *testing.T) {
	s := NewSharing(&fakeGraph{friends: map[string]bool{"owner:friend": true}})
	note := models.Note{ID: "n1", OwnerID: "owner"}

	ok, err := s.CanShare(context.Background(), "owner", note, "friend")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CanShare(context.Background(), "owner", note, "stranger")
	require.NoError(t, err)
	assert.False(t, ok)

	// only the owner may share
	ok, err = s.CanShare(context.Background(), "friend", note, "friend")
	require.NoError(t, err)
	assert.False(t, ok)

	// never with yourself
	ok, err = s.CanShare(context.Background(), "owner", note, "owner")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCanView(t *testing.T) {
	note := models.Note{ID: "n1", OwnerID: "owner", SharedWith: []string{"viewer"}}

	assert.True(t, CanView("owner", note))
	assert.True(t, CanView("viewer", note))
	assert.False(t, CanView("stranger", note))
}

func TestCanEdit(t *testing.T) {
	note := models.Note{ID: "n1", OwnerID: "owner", SharedWith: []string{"viewer"}}

	assert.True(t, CanEdit("owner", note))
	assert.False(t, CanEdit("viewer", note))
	assert.False(t, CanEdit("stranger", note))

	note.AllowEditing = true
	assert.True(t, CanEdit("viewer", note))
	assert.False(t, CanEdit("stranger", note))
}
