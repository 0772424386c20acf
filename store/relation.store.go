package store

import (
	"context"
	"notehub-server/models"
	"time"

	"github.com/gocql/gocql"
)

func scanRelation(row map[string]interface{}) models.Relation {
	return models.Relation{
		UserID: row["user_id"].(gocql.UUID).String(),
		PeerID: row["peer_id"].(gocql.UUID).String(),
		State:  models.RelationState(row["state"].(string)),
		Peer: models.PublicUser{
			ID:    row["peer_id"].(gocql.UUID).String(),
			Name:  row["peer_name"].(string),
			Email: row["peer_email"].(string),
		},
		Created: row["created"].(time.Time),
	}
}

// Relation reads one user's side of a relationship edge
func (s *Store) Relation(ctx context.Context, userID string, peerID string) (models.Relation, error) {

	row := make(map[string]interface{})

	err := s.session.Query(`
		SELECT * FROM user_relations WHERE user_id = ? AND peer_id = ? LIMIT 1;`,
		userID,
		peerID,
	).WithContext(ctx).MapScan(row)

	if err != nil {
		if err == gocql.ErrNotFound {
			return models.Relation{}, ErrNotFound
		}
		return models.Relation{}, err
	}

	return scanRelation(row), nil
}

// RelationsOf reads all relationship edges of one user
func (s *Store) RelationsOf(ctx context.Context, userID string) ([]models.Relation, error) {

	iter := s.session.Query(`
		SELECT * FROM user_relations WHERE user_id = ?;`,
		userID,
	).WithContext(ctx).Iter()

	defer iter.Close()

	var relations []models.Relation
	for {
		row := make(map[string]interface{})
		if !iter.MapScan(row) {
			break
		}
		relations = append(relations, scanRelation(row))
	}

	return relations, iter.Close()
}

// CreateEdge writes both pending rows of a new request in one logged batch,
// so a crash cannot leave a one-sided request
func (s *Store) CreateEdge(ctx context.Context, from models.User, to models.User) error {

	created := time.Now().UTC()

	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		INSERT INTO user_relations (user_id,peer_id,state,peer_name,peer_email,created)
		VALUES(?,?,?,?,?,?);`,
		from.ID,
		to.ID,
		string(models.StatePendingOut),
		to.Name,
		to.Email,
		created,
	)
	batch.Query(`
		INSERT INTO user_relations (user_id,peer_id,state,peer_name,peer_email,created)
		VALUES(?,?,?,?,?,?);`,
		to.ID,
		from.ID,
		string(models.StatePendingIn),
		from.Name,
		from.Email,
		created,
	)

	return s.session.ExecuteBatch(batch)
}

// PromoteEdge flips both sides of a pending edge to friend in one logged batch
func (s *Store) PromoteEdge(ctx context.Context, userID string, peerID string) error {

	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		UPDATE user_relations SET state = ? WHERE user_id = ? AND peer_id = ?;`,
		string(models.StateFriend),
		userID,
		peerID,
	)
	batch.Query(`
		UPDATE user_relations SET state = ? WHERE user_id = ? AND peer_id = ?;`,
		string(models.StateFriend),
		peerID,
		userID,
	)

	return s.session.ExecuteBatch(batch)
}

// DeleteEdge removes both sides of an edge in one logged batch; deleting an
// absent edge is a no-op
func (s *Store) DeleteEdge(ctx context.Context, userID string, peerID string) error {

	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		DELETE FROM user_relations WHERE user_id = ? AND peer_id = ?;`,
		userID,
		peerID,
	)
	batch.Query(`
		DELETE FROM user_relations WHERE user_id = ? AND peer_id = ?;`,
		peerID,
		userID,
	)

	return s.session.ExecuteBatch(batch)
}
