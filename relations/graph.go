package relations

import (
	"context"
	Errors "errors"
	"notehub-server/models"
	"notehub-server/store"
	"sort"
)

// Sentinel errors surfaced to the service layer
var (
	ErrUserNotFound     = Errors.New("relations: user not found")
	ErrSelfRequest      = Errors.New("relations: cannot relate to self")
	ErrAlreadyFriends   = Errors.New("relations: already friends")
	ErrAlreadyRequested = Errors.New("relations: request already pending")
	ErrNoSuchRequest    = Errors.New("relations: no pending request")
)

// Store is the persistence capability the graph needs. Edge mutations must
// write both mirrored rows atomically.
type Store interface {
	UserByID(ctx context.Context, id string) (models.User, error)
	Relation(ctx context.Context, userID string, peerID string) (models.Relation, error)
	RelationsOf(ctx context.Context, userID string) ([]models.Relation, error)
	CreateEdge(ctx context.Context, from models.User, to models.User) error
	PromoteEdge(ctx context.Context, userID string, peerID string) error
	DeleteEdge(ctx context.Context, userID string, peerID string) error
}

// Graph owns the friend-request state machine: none -> pending -> friends,
// with removal from any state
type Graph struct {
	store Store
}

// NewGraph builds a relationship graph over a store handle
func NewGraph(s Store) *Graph {
	return &Graph{store: s}
}

// SendRequest opens a pending edge from self to the target. A pending
// request in either direction blocks a new one, so a pair is never in two
// states at once.
func (g *Graph) SendRequest(ctx context.Context, self models.User, targetID string) (models.PublicUser, error) {

	if targetID == self.ID {
		return models.PublicUser{}, ErrSelfRequest
	}

	target, err := g.store.UserByID(ctx, targetID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.PublicUser{}, ErrUserNotFound
		}
		return models.PublicUser{}, err
	}

	rel, err := g.store.Relation(ctx, self.ID, targetID)
	if err == nil {
		if rel.State == models.StateFriend {
			return models.PublicUser{}, ErrAlreadyFriends
		}
		return models.PublicUser{}, ErrAlreadyRequested
	}
	if !Errors.Is(err, store.ErrNotFound) {
		return models.PublicUser{}, err
	}

	if err = g.store.CreateEdge(ctx, self, target); err != nil {
		return models.PublicUser{}, err
	}

	return target.Public(), nil
}

// AcceptRequest promotes a pending request into a friendship. It requires an
// actual incoming request: accepting without one fails with ErrNoSuchRequest
// instead of fabricating a friendship.
func (g *Graph) AcceptRequest(ctx context.Context, selfID string, requesterID string) error {

	if _, err := g.store.UserByID(ctx, requesterID); err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	rel, err := g.store.Relation(ctx, selfID, requesterID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return ErrNoSuchRequest
		}
		return err
	}
	if rel.State != models.StatePendingIn {
		return ErrNoSuchRequest
	}

	return g.store.PromoteEdge(ctx, selfID, requesterID)
}

// Remove deletes whatever edge exists between the pair: it unfriends,
// declines an incoming request or cancels an outgoing one. Removing an
// absent edge succeeds.
func (g *Graph) Remove(ctx context.Context, selfID string, otherID string) error {

	if _, err := g.store.UserByID(ctx, otherID); err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return g.store.DeleteEdge(ctx, selfID, otherID)
}

// Lists is the read-only projection of one user's relationships
type Lists struct {
	Friends  []models.Relation
	Incoming []models.Relation
	Outgoing []models.Relation
}

// Relations buckets one user's edges by state. Friends and outgoing are
// oldest first, incoming newest first.
func (g *Graph) Relations(ctx context.Context, selfID string) (Lists, error) {

	edges, err := g.store.RelationsOf(ctx, selfID)
	if err != nil {
		return Lists{}, err
	}

	var lists Lists
	for _, rel := range edges {
		switch rel.State {
		case models.StateFriend:
			lists.Friends = append(lists.Friends, rel)
		case models.StatePendingIn:
			lists.Incoming = append(lists.Incoming, rel)
		case models.StatePendingOut:
			lists.Outgoing = append(lists.Outgoing, rel)
		}
	}

	sort.SliceStable(lists.Friends, func(i, j int) bool {
		return lists.Friends[i].Created.Before(lists.Friends[j].Created)
	})
	sort.SliceStable(lists.Outgoing, func(i, j int) bool {
		return lists.Outgoing[i].Created.Before(lists.Outgoing[j].Created)
	})
	sort.SliceStable(lists.Incoming, func(i, j int) bool {
		return lists.Incoming[i].Created.After(lists.Incoming[j].Created)
	})

	return lists, nil
}

// Status projects the relation between two users into the booleans used to
// annotate user listings
func (g *Graph) Status(ctx context.Context, selfID string, otherID string) (models.FriendStatus, error) {

	rel, err := g.store.Relation(ctx, selfID, otherID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.FriendStatus{}, nil
		}
		return models.FriendStatus{}, err
	}

	return models.FriendStatus{
		IsFriend:           rel.State == models.StateFriend,
		HasIncomingRequest: rel.State == models.StatePendingIn,
		HasSentRequest:     rel.State == models.StatePendingOut,
	}, nil
}
