package notes

import (
	"context"
	Errors "errors"
	"io"
	"notehub-server/models"
	"notehub-server/policy"
	"notehub-server/store"
	"sort"
	"time"

	"github.com/gocql/gocql"
)

// Share grants a friend access to an owned note. Sharing with a user who
// already holds a grant is a no-op.
func (n *Notes) Share(ctx context.Context, owner models.User, noteID string, targetID string) (models.Note, error) {

	note, err := n.store.NoteByID(ctx, owner.ID, noteID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	if note.SharedWithUser(targetID) {
		return note, nil
	}

	target, err := n.store.UserByID(ctx, targetID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Note{}, ErrUserNotFound
		}
		return models.Note{}, err
	}

	ok, err := n.policy.CanShare(ctx, owner.ID, note, targetID)
	if err != nil {
		return models.Note{}, err
	}
	if !ok {
		return models.Note{}, ErrNotFriend
	}

	if err = n.store.AddGrant(ctx, note, owner.Public(), target.Public()); err != nil {
		return models.Note{}, err
	}

	note.SharedWith = append(note.SharedWith, targetID)
	note.IsShared = true

	return note, nil
}

// Unshare revokes a grant. Unsharing from a user without one is a no-op.
func (n *Notes) Unshare(ctx context.Context, ownerID string, noteID string, targetID string) (models.Note, error) {

	note, err := n.store.NoteByID(ctx, ownerID, noteID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, err
	}

	if !note.SharedWithUser(targetID) {
		return note, nil
	}

	if err = n.store.RevokeGrant(ctx, note, targetID); err != nil {
		return models.Note{}, err
	}

	remaining := note.SharedWith[:0]
	for _, id := range note.SharedWith {
		if id != targetID {
			remaining = append(remaining, id)
		}
	}
	note.SharedWith = remaining
	note.IsShared = len(note.SharedWith) > 0

	return note, nil
}

// SharedNote pairs a note shared with the viewer with its owner's profile
type SharedNote struct {
	Note  models.Note
	Owner models.PublicUser
}

// SharedWithMe lists the notes other users shared with the viewer, newest
// grant first. Stale grant rows whose note is gone are skipped.
func (n *Notes) SharedWithMe(ctx context.Context, viewerID string) ([]SharedNote, error) {

	grants, err := n.store.GrantsFor(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(grants, func(i, j int) bool {
		return grants[i].Created.After(grants[j].Created)
	})

	shared := make([]SharedNote, 0, len(grants))
	for _, grant := range grants {
		note, err := n.store.NoteByID(ctx, grant.OwnerID, grant.NoteID)
		if err != nil {
			if Errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		shared = append(shared, SharedNote{Note: note, Owner: grant.Owner})
	}

	return shared, nil
}

// AttachParams describe an uploaded attachment blob
type AttachParams struct {
	Filename    string
	ContentType string
	Size        int64
}

// Attach stores an attachment on an owned note
func (n *Notes) Attach(ctx context.Context, ownerID string, noteID string, p AttachParams, r io.Reader) (models.Attachment, error) {

	if _, err := n.store.NoteByID(ctx, ownerID, noteID); err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Attachment{}, ErrNoteNotFound
		}
		return models.Attachment{}, err
	}

	att := models.Attachment{
		NoteID:      noteID,
		ID:          gocql.TimeUUID().String(),
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		Created:     time.Now().UTC(),
	}

	if err := n.store.PutAttachment(ctx, att, r); err != nil {
		return models.Attachment{}, err
	}

	return att, nil
}

// Attachments lists a note's attachments for anyone allowed to view it
func (n *Notes) Attachments(ctx context.Context, viewerID string, noteID string) ([]models.Attachment, error) {

	note, _, err := n.Resolve(ctx, viewerID, noteID)
	if err != nil {
		return nil, err
	}
	if !policy.CanView(viewerID, note) {
		return nil, ErrNoteNotFound
	}

	return n.store.AttachmentsFor(ctx, noteID)
}

// OpenAttachment streams an attachment blob for anyone allowed to view the
// note it belongs to
func (n *Notes) OpenAttachment(ctx context.Context, viewerID string, noteID string, attachmentID string) (models.Attachment, io.ReadCloser, error) {

	note, _, err := n.Resolve(ctx, viewerID, noteID)
	if err != nil {
		return models.Attachment{}, nil, err
	}
	if !policy.CanView(viewerID, note) {
		return models.Attachment{}, nil, ErrNoteNotFound
	}

	att, err := n.store.Attachment(ctx, noteID, attachmentID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Attachment{}, nil, ErrAttachmentNotFound
		}
		return models.Attachment{}, nil, err
	}

	r, err := n.store.OpenAttachment(ctx, att.ID)
	if err != nil {
		return models.Attachment{}, nil, err
	}

	return att, r, nil
}

// RemoveAttachment deletes an attachment from an owned note
func (n *Notes) RemoveAttachment(ctx context.Context, ownerID string, noteID string, attachmentID string) error {

	if _, err := n.store.NoteByID(ctx, ownerID, noteID); err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	att, err := n.store.Attachment(ctx, noteID, attachmentID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return ErrAttachmentNotFound
		}
		return err
	}

	return n.store.DeleteAttachment(ctx, att)
}
