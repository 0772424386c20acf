package store

import (
	"context"
	"io"
	"notehub-server/models"
	"time"

	"github.com/gocql/gocql"
	minio "github.com/minio/minio-go/v7"
)

// AttachmentBucket is the MinIO bucket holding note attachment blobs
const AttachmentBucket = "attachments"

func scanAttachment(row map[string]interface{}) models.Attachment {
	return models.Attachment{
		NoteID:      row["note_id"].(gocql.UUID).String(),
		ID:          row["attachment_id"].(gocql.UUID).String(),
		Filename:    row["filename"].(string),
		ContentType: row["content_type"].(string),
		Size:        row["size"].(int64),
		Created:     row["created"].(time.Time),
	}
}

// PutAttachment stores the blob in MinIO and its metadata row in ScyllaDB
func (s *Store) PutAttachment(ctx context.Context, att models.Attachment, r io.Reader) error {

	_, err := s.minio.PutObject(ctx, AttachmentBucket, att.ID, r, att.Size, minio.PutObjectOptions{
		ContentType: att.ContentType,
	})
	if err != nil {
		return err
	}

	return s.session.Query(`
		INSERT INTO note_attachments (note_id,attachment_id,filename,content_type,size,created)
		VALUES(?,?,?,?,?,?);`,
		att.NoteID,
		att.ID,
		att.Filename,
		att.ContentType,
		att.Size,
		att.Created,
	).WithContext(ctx).Exec()
}

// Attachment reads one attachment's metadata
func (s *Store) Attachment(ctx context.Context, noteID string, attachmentID string) (models.Attachment, error) {

	row := make(map[string]interface{})

	err := s.session.Query(`
		SELECT * FROM note_attachments WHERE note_id = ? AND attachment_id = ? LIMIT 1;`,
		noteID,
		attachmentID,
	).WithContext(ctx).MapScan(row)

	if err != nil {
		if err == gocql.ErrNotFound {
			return models.Attachment{}, ErrNotFound
		}
		return models.Attachment{}, err
	}

	return scanAttachment(row), nil
}

// AttachmentsFor lists a note's attachments
func (s *Store) AttachmentsFor(ctx context.Context, noteID string) ([]models.Attachment, error) {

	iter := s.session.Query(`
		SELECT * FROM note_attachments WHERE note_id = ?;`,
		noteID,
	).WithContext(ctx).Iter()

	defer iter.Close()

	var attachments []models.Attachment
	for {
		row := make(map[string]interface{})
		if !iter.MapScan(row) {
			break
		}
		attachments = append(attachments, scanAttachment(row))
	}

	return attachments, iter.Close()
}

// OpenAttachment streams an attachment blob out of MinIO
func (s *Store) OpenAttachment(ctx context.Context, attachmentID string) (io.ReadCloser, error) {
	return s.minio.GetObject(ctx, AttachmentBucket, attachmentID, minio.GetObjectOptions{})
}

// DeleteAttachment removes the blob and the metadata row
func (s *Store) DeleteAttachment(ctx context.Context, att models.Attachment) error {

	if err := s.minio.RemoveObject(ctx, AttachmentBucket, att.ID, minio.RemoveObjectOptions{}); err != nil {
		return err
	}

	return s.session.Query(`
		DELETE FROM note_attachments WHERE note_id = ? AND attachment_id = ?;`,
		att.NoteID,
		att.ID,
	).WithContext(ctx).Exec()
}

// DeleteNoteAttachments removes every attachment of a note (used when the
// note itself is deleted)
func (s *Store) DeleteNoteAttachments(ctx context.Context, noteID string) error {

	attachments, err := s.AttachmentsFor(ctx, noteID)
	if err != nil {
		return err
	}

	for _, att := range attachments {
		if err := s.minio.RemoveObject(ctx, AttachmentBucket, att.ID, minio.RemoveObjectOptions{}); err != nil {
			return err
		}
	}

	return s.session.Query(`
		DELETE FROM note_attachments WHERE note_id = ?;`,
		noteID,
	).WithContext(ctx).Exec()
}
