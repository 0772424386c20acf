package store

import (
	"context"
	"notehub-server/models"
	"time"

	"github.com/gocql/gocql"
)

func scanNote(row map[string]interface{}) models.Note {

	note := models.Note{
		ID:           row["note_id"].(gocql.UUID).String(),
		OwnerID:      row["owner_id"].(gocql.UUID).String(),
		Title:        row["title"].(string),
		Content:      row["content"].(string),
		Color:        row["color"].(string),
		AllowEditing: row["allow_editing"].(bool),
		Created:      row["created"].(time.Time),
		Modified:     row["modified"].(time.Time),
	}

	if tags, ok := row["tags"].([]string); ok {
		note.Tags = tags
	}
	if shared, ok := row["shared_with"].([]gocql.UUID); ok {
		for _, id := range shared {
			note.SharedWith = append(note.SharedWith, id.String())
		}
	}
	note.IsShared = len(note.SharedWith) > 0

	return note
}

// InsertNote writes a full note row
func (s *Store) InsertNote(ctx context.Context, note models.Note) error {

	return s.session.Query(`
		INSERT INTO notes (owner_id,note_id,title,content,color,tags,shared_with,allow_editing,created,modified)
		VALUES(?,?,?,?,?,?,?,?,?,?);`,
		note.OwnerID,
		note.ID,
		note.Title,
		note.Content,
		note.Color,
		note.Tags,
		note.SharedWith,
		note.AllowEditing,
		note.Created,
		note.Modified,
	).WithContext(ctx).Exec()
}

// NoteByID reads a note scoped to its owner partition
func (s *Store) NoteByID(ctx context.Context, ownerID string, noteID string) (models.Note, error) {

	row := make(map[string]interface{})

	err := s.session.Query(`
		SELECT * FROM notes WHERE owner_id = ? AND note_id = ? LIMIT 1;`,
		ownerID,
		noteID,
	).WithContext(ctx).MapScan(row)

	if err != nil {
		if err == gocql.ErrNotFound {
			return models.Note{}, ErrNotFound
		}
		return models.Note{}, err
	}

	return scanNote(row), nil
}

// SaveNote updates the editable attributes of a note; sharing state is only
// mutated through AddGrant/RevokeGrant
func (s *Store) SaveNote(ctx context.Context, note models.Note) error {

	return s.session.Query(`
		UPDATE notes
		SET
		title = ?,
		content = ?,
		color = ?,
		tags = ?,
		allow_editing = ?,
		modified = ?
		WHERE owner_id = ? AND note_id = ?;`,
		note.Title,
		note.Content,
		note.Color,
		note.Tags,
		note.AllowEditing,
		note.Modified,
		note.OwnerID,
		note.ID,
	).WithContext(ctx).Exec()
}

// DeleteNote removes the note row and every per-viewer mirror row in one
// logged batch
func (s *Store) DeleteNote(ctx context.Context, note models.Note) error {

	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		DELETE FROM notes WHERE owner_id = ? AND note_id = ?;`,
		note.OwnerID,
		note.ID,
	)
	for _, viewerID := range note.SharedWith {
		batch.Query(`
			DELETE FROM note_shares WHERE user_id = ? AND note_id = ?;`,
			viewerID,
			note.ID,
		)
	}

	return s.session.ExecuteBatch(batch)
}

// NotesByOwner reads all notes of one owner
func (s *Store) NotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {

	iter := s.session.Query(`
		SELECT * FROM notes WHERE owner_id = ?;`,
		ownerID,
	).WithContext(ctx).Iter()

	defer iter.Close()

	var notes []models.Note
	for {
		row := make(map[string]interface{})
		if !iter.MapScan(row) {
			break
		}
		notes = append(notes, scanNote(row))
	}

	return notes, iter.Close()
}

// AddGrant adds a recipient to the note's shared_with set and writes the
// viewer-side mirror row in one logged batch
func (s *Store) AddGrant(ctx context.Context, note models.Note, owner models.PublicUser, target models.PublicUser) error {

	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		UPDATE notes SET shared_with = shared_with + ? WHERE owner_id = ? AND note_id = ?;`,
		[]string{target.ID},
		note.OwnerID,
		note.ID,
	)
	batch.Query(`
		INSERT INTO note_shares (user_id,note_id,owner_id,owner_name,owner_email,created)
		VALUES(?,?,?,?,?,?);`,
		target.ID,
		note.ID,
		note.OwnerID,
		owner.Name,
		owner.Email,
		time.Now().UTC(),
	)

	return s.session.ExecuteBatch(batch)
}

// RevokeGrant removes a recipient from the shared_with set and deletes the
// viewer-side mirror row in one logged batch
func (s *Store) RevokeGrant(ctx context.Context, note models.Note, targetID string) error {

	batch := s.session.NewBatch(gocql.LoggedBatch).WithContext(ctx)
	batch.Query(`
		UPDATE notes SET shared_with = shared_with - ? WHERE owner_id = ? AND note_id = ?;`,
		[]string{targetID},
		note.OwnerID,
		note.ID,
	)
	batch.Query(`
		DELETE FROM note_shares WHERE user_id = ? AND note_id = ?;`,
		targetID,
		note.ID,
	)

	return s.session.ExecuteBatch(batch)
}

func scanGrant(row map[string]interface{}) models.ShareGrant {
	return models.ShareGrant{
		UserID:  row["user_id"].(gocql.UUID).String(),
		NoteID:  row["note_id"].(gocql.UUID).String(),
		OwnerID: row["owner_id"].(gocql.UUID).String(),
		Owner: models.PublicUser{
			ID:    row["owner_id"].(gocql.UUID).String(),
			Name:  row["owner_name"].(string),
			Email: row["owner_email"].(string),
		},
		Created: row["created"].(time.Time),
	}
}

// Grant reads a single share grant of a viewer
func (s *Store) Grant(ctx context.Context, userID string, noteID string) (models.ShareGrant, error) {

	row := make(map[string]interface{})

	err := s.session.Query(`
		SELECT * FROM note_shares WHERE user_id = ? AND note_id = ? LIMIT 1;`,
		userID,
		noteID,
	).WithContext(ctx).MapScan(row)

	if err != nil {
		if err == gocql.ErrNotFound {
			return models.ShareGrant{}, ErrNotFound
		}
		return models.ShareGrant{}, err
	}

	return scanGrant(row), nil
}

// GrantsFor reads every share grant of a viewer
func (s *Store) GrantsFor(ctx context.Context, userID string) ([]models.ShareGrant, error) {

	iter := s.session.Query(`
		SELECT * FROM note_shares WHERE user_id = ?;`,
		userID,
	).WithContext(ctx).Iter()

	defer iter.Close()

	var grants []models.ShareGrant
	for {
		row := make(map[string]interface{})
		if !iter.MapScan(row) {
			break
		}
		grants = append(grants, scanGrant(row))
	}

	return grants, iter.Close()
}
