package relations

import (
	"context"
	"notehub-server/models"
	"notehub-server/store"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	users map[string]models.User
	rels  map[string]map[string]models.Relation
	now   time.Time
}

func newFakeStore(users ...models.User) *fakeStore {
	fs := &fakeStore{
		users: make(map[string]models.User),
		rels:  make(map[string]map[string]models.Relation),
		now:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	for _, u := range users {
		fs.users[u.ID] = u
	}
	return fs
}

func (fs *fakeStore) tick() time.Time {
	fs.now = fs.now.Add(time.Minute)
	return fs.now
}

func (fs *fakeStore) UserByID(ctx context.Context, id string) (models.User, error) {
	u, ok := fs.users[id]
	if !ok {
		return models.User{}, store.ErrNotFound
	}
	return u, nil
}

func (fs *fakeStore) Relation(ctx context.Context, userID string, peerID string) (models.Relation, error) {
	rel, ok := fs.rels[userID][peerID]
	if !ok {
		return models.Relation{}, store.ErrNotFound
	}
	return rel, nil
}

func (fs *fakeStore) RelationsOf(ctx context.Context, userID string) ([]models.Relation, error) {
	var rels []models.Relation
	for _, rel := range fs.rels[userID] {
		rels = append(rels, rel)
	}
	return rels, nil
}

func (fs *fakeStore) put(rel models.Relation) {
	if fs.rels[rel.UserID] == nil {
		fs.rels[rel.UserID] = make(map[string]models.Relation)
	}
	fs.rels[rel.UserID][rel.PeerID] = rel
}

func (fs *fakeStore) CreateEdge(ctx context.Context, from models.User, to models.User) error {
	created := fs.tick()
	fs.put(models.Relation{
		UserID: from.ID, PeerID: to.ID,
		State: models.StatePendingOut, Peer: to.Public(), Created: created,
	})
	fs.put(models.Relation{
		UserID: to.ID, PeerID: from.ID,
		State: models.StatePendingIn, Peer: from.Public(), Created: created,
	})
	return nil
}

func (fs *fakeStore) PromoteEdge(ctx context.Context, userID string, peerID string) error {
	for _, pair := range [][2]string{{userID, peerID}, {peerID, userID}} {
		rel := fs.rels[pair[0]][pair[1]]
		rel.State = models.StateFriend
		fs.put(rel)
	}
	return nil
}

func (fs *fakeStore) DeleteEdge(ctx context.Context, userID string, peerID string) error {
	delete(fs.rels[userID], peerID)
	delete(fs.rels[peerID], userID)
	return nil
}

func user(id string, name string) models.User {
	return models.User{ID: id, Name: name, Email: name + "@example.com"}
}

func TestSendRequestCreatesMirroredPending(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	fs := newFakeStore(alice, bob)
	g := NewGraph(fs)

	target, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, target.ID)

	out, err := fs.Relation(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatePendingOut, out.State)

	in, err := fs.Relation(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatePendingIn, in.State)
}

func TestSendRequestToSelf(t *testing.T) {
	alice := user("u1", "alice")
	g := NewGraph(newFakeStore(alice))

	_, err := g.SendRequest(context.Background(), alice, alice.ID)
	assert.ErrorIs(t, err, ErrSelfRequest)
}

func TestSendRequestUnknownTarget(t *testing.T) {
	alice := user("u1", "alice")
	g := NewGraph(newFakeStore(alice))

	_, err := g.SendRequest(context.Background(), alice, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendRequestDuplicate(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	fs := newFakeStore(alice, bob)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)

	_, err = g.SendRequest(context.Background(), alice, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyRequested)

	// a pending request blocks the reverse direction too
	_, err = g.SendRequest(context.Background(), bob, alice.ID)
	assert.ErrorIs(t, err, ErrAlreadyRequested)
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	fs := newFakeStore(alice, bob)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)
	require.NoError(t, g.AcceptRequest(context.Background(), bob.ID, alice.ID))

	_, err = g.SendRequest(context.Background(), alice, bob.ID)
	assert.ErrorIs(t, err, ErrAlreadyFriends)
}

func TestAcceptRequestPromotesBothSides(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	fs := newFakeStore(alice, bob)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)
	require.NoError(t, g.AcceptRequest(context.Background(), bob.ID, alice.ID))

	for _, pair := range [][2]string{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		rel, err := fs.Relation(context.Background(), pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, models.StateFriend, rel.State)
	}
}

func TestAcceptRequestWithoutPending(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	g := NewGraph(newFakeStore(alice, bob))

	err := g.AcceptRequest(context.Background(), bob.ID, alice.ID)
	assert.ErrorIs(t, err, ErrNoSuchRequest)
}

func TestAcceptRequestWrongDirection(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	g := NewGraph(newFakeStore(alice, bob))

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)

	// the sender cannot accept their own request
	err = g.AcceptRequest(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNoSuchRequest)
}

func TestRemoveIsIdempotent(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	fs := newFakeStore(alice, bob)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)
	require.NoError(t, g.AcceptRequest(context.Background(), bob.ID, alice.ID))

	require.NoError(t, g.Remove(context.Background(), alice.ID, bob.ID))
	require.NoError(t, g.Remove(context.Background(), alice.ID, bob.ID))

	_, err = fs.Relation(context.Background(), bob.ID, alice.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestReRequestAfterRemove(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	fs := newFakeStore(alice, bob)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)
	require.NoError(t, g.Remove(context.Background(), bob.ID, alice.ID))

	_, err = g.SendRequest(context.Background(), bob, alice.ID)
	require.NoError(t, err)

	rel, err := fs.Relation(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatePendingOut, rel.State)
}

func TestRelationsBuckets(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	carol := user("u3", "carol")
	dave := user("u4", "dave")
	fs := newFakeStore(alice, bob, carol, dave)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)
	require.NoError(t, g.AcceptRequest(context.Background(), bob.ID, alice.ID))

	_, err = g.SendRequest(context.Background(), alice, carol.ID)
	require.NoError(t, err)

	_, err = g.SendRequest(context.Background(), dave, alice.ID)
	require.NoError(t, err)

	lists, err := g.Relations(context.Background(), alice.ID)
	require.NoError(t, err)

	require.Len(t, lists.Friends, 1)
	assert.Equal(t, bob.ID, lists.Friends[0].PeerID)
	require.Len(t, lists.Outgoing, 1)
	assert.Equal(t, carol.ID, lists.Outgoing[0].PeerID)
	require.Len(t, lists.Incoming, 1)
	assert.Equal(t, dave.ID, lists.Incoming[0].PeerID)
}

func TestStatus(t *testing.T) {
	alice := user("u1", "alice")
	bob := user("u2", "bob")
	carol := user("u3", "carol")
	fs := newFakeStore(alice, bob, carol)
	g := NewGraph(fs)

	_, err := g.SendRequest(context.Background(), alice, bob.ID)
	require.NoError(t, err)

	status, err := g.Status(context.Background(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, status.HasSentRequest)
	assert.False(t, status.IsFriend)

	status, err = g.Status(context.Background(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, status.HasIncomingRequest)

	status, err = g.Status(context.Background(), alice.ID, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, models.FriendStatus{}, status)
}
