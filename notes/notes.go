package notes

import (
	"context"
	Errors "errors"
	"io"
	"notehub-server/models"
	"notehub-server/policy"
	"notehub-server/store"
	"strings"
	"time"

	"github.com/gocql/gocql"
)

// Sentinel errors surfaced to the service layer
var (
	ErrNoteNotFound       = Errors.New("notes: note not found")
	ErrUserNotFound       = Errors.New("notes: user not found")
	ErrNotFriend          = Errors.New("notes: target is not a friend")
	ErrForbidden          = Errors.New("notes: not permitted")
	ErrAttachmentNotFound = Errors.New("notes: attachment not found")
)

// Store is the persistence capability the note store needs. Share mutations
// must write the note and the viewer-side mirror row atomically.
type Store interface {
	UserByID(ctx context.Context, id string) (models.User, error)

	InsertNote(ctx context.Context, note models.Note) error
	NoteByID(ctx context.Context, ownerID string, noteID string) (models.Note, error)
	SaveNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, note models.Note) error
	NotesByOwner(ctx context.Context, ownerID string) ([]models.Note, error)

	AddGrant(ctx context.Context, note models.Note, owner models.PublicUser, target models.PublicUser) error
	RevokeGrant(ctx context.Context, note models.Note, targetID string) error
	Grant(ctx context.Context, userID string, noteID string) (models.ShareGrant, error)
	GrantsFor(ctx context.Context, userID string) ([]models.ShareGrant, error)

	PutAttachment(ctx context.Context, att models.Attachment, r io.Reader) error
	Attachment(ctx context.Context, noteID string, attachmentID string) (models.Attachment, error)
	AttachmentsFor(ctx context.Context, noteID string) ([]models.Attachment, error)
	OpenAttachment(ctx context.Context, attachmentID string) (io.ReadCloser, error)
	DeleteAttachment(ctx context.Context, att models.Attachment) error
	DeleteNoteAttachments(ctx context.Context, noteID string) error
}

// Notes owns note attributes and the sharedWith set; authorization decisions
// are delegated to the sharing policy
type Notes struct {
	store  Store
	policy *policy.Sharing
}

// New builds the note store over a store handle and a sharing policy
func New(s Store, p *policy.Sharing) *Notes {
	return &Notes{store: s, policy: p}
}

// CreateParams are the caller-settable attributes of a new note
type CreateParams struct {
	Title        string
	Content      string
	Color        string
	Tags         []string
	SharedWith   []string
	AllowEditing bool
}

// Create makes a new note owned by the caller. Initial share targets go
// through the same friendship check as a later share.
func (n *Notes) Create(ctx context.Context, owner models.User, p CreateParams) (models.Note, error) {

	color := p.Color
	if color == "" {
		color = models.ColorYellow
	}

	now := time.Now().UTC()
	note := models.Note{
		ID:           gocql.TimeUUID().String(),
		OwnerID:      owner.ID,
		Title:        p.Title,
		Content:      p.Content,
		Color:        color,
		Tags:         p.Tags,
		AllowEditing: p.AllowEditing,
		Created:      now,
		Modified:     now,
	}

	targets, err := n.resolveShareTargets(ctx, owner.ID, note, p.SharedWith)
	if err != nil {
		return models.Note{}, err
	}

	if err = n.store.InsertNote(ctx, note); err != nil {
		return models.Note{}, err
	}

	ownerProfile := owner.Public()
	for _, target := range targets {
		if err = n.store.AddGrant(ctx, note, ownerProfile, target); err != nil {
			return models.Note{}, err
		}
		note.SharedWith = append(note.SharedWith, target.ID)
	}
	note.IsShared = len(note.SharedWith) > 0

	return note, nil
}

func (n *Notes) resolveShareTargets(ctx context.Context, ownerID string, note models.Note, targetIDs []string) ([]models.PublicUser, error) {

	seen := make(map[string]bool)
	var targets []models.PublicUser

	for _, targetID := range targetIDs {
		if seen[targetID] {
			continue
		}
		seen[targetID] = true

		target, err := n.store.UserByID(ctx, targetID)
		if err != nil {
			if Errors.Is(err, store.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}

		ok, err := n.policy.CanShare(ctx, ownerID, note, targetID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrNotFriend
		}

		targets = append(targets, target.Public())
	}

	return targets, nil
}

// ByOwner lists all notes of the caller
func (n *Notes) ByOwner(ctx context.Context, ownerID string) ([]models.Note, error) {
	return n.store.NotesByOwner(ctx, ownerID)
}

// Resolve locates a note the viewer may see: their own, or one shared with
// them (through the viewer-side grant mirror). Returns whether the viewer is
// the owner.
func (n *Notes) Resolve(ctx context.Context, viewerID string, noteID string) (models.Note, bool, error) {

	note, err := n.store.NoteByID(ctx, viewerID, noteID)
	if err == nil {
		return note, true, nil
	}
	if !Errors.Is(err, store.ErrNotFound) {
		return models.Note{}, false, err
	}

	grant, err := n.store.Grant(ctx, viewerID, noteID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Note{}, false, ErrNoteNotFound
		}
		return models.Note{}, false, err
	}

	note, err = n.store.NoteByID(ctx, grant.OwnerID, noteID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return models.Note{}, false, ErrNoteNotFound
		}
		return models.Note{}, false, err
	}

	return note, false, nil
}

// UpdateParams are the updatable attributes of a note; nil means untouched
type UpdateParams struct {
	Title        *string
	Content      *string
	Color        *string
	Tags         *[]string
	AllowEditing *bool
}

// Update edits a note. The owner may edit everything; a share recipient may
// edit content attributes only on notes with editing enabled.
func (n *Notes) Update(ctx context.Context, viewerID string, noteID string, p UpdateParams) (models.Note, error) {

	note, owned, err := n.Resolve(ctx, viewerID, noteID)
	if err != nil {
		return models.Note{}, err
	}

	if !owned {
		if !policy.CanEdit(viewerID, note) {
			return models.Note{}, ErrForbidden
		}
		if p.AllowEditing != nil {
			return models.Note{}, ErrForbidden
		}
	}

	if p.Title != nil {
		note.Title = *p.Title
	}
	if p.Content != nil {
		note.Content = *p.Content
	}
	if p.Color != nil {
		note.Color = *p.Color
	}
	if p.Tags != nil {
		note.Tags = *p.Tags
	}
	if p.AllowEditing != nil {
		note.AllowEditing = *p.AllowEditing
	}
	note.Modified = time.Now().UTC()

	if err = n.store.SaveNote(ctx, note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

// Delete removes an owned note, its share mirror rows and its attachments
func (n *Notes) Delete(ctx context.Context, ownerID string, noteID string) error {

	note, err := n.store.NoteByID(ctx, ownerID, noteID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}

	if err = n.store.DeleteNoteAttachments(ctx, noteID); err != nil {
		return err
	}

	return n.store.DeleteNote(ctx, note)
}

// SearchParams filter an owner's notes; empty fields do not filter
type SearchParams struct {
	TitleQuery string
	Tags       []string
	Color      string
}

// Search filters the owner's notes: case-insensitive substring on title, OR
// over tags, exact color; filters compose with AND
func (n *Notes) Search(ctx context.Context, ownerID string, p SearchParams) ([]models.Note, error) {

	all, err := n.store.NotesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	titleQuery := strings.ToLower(p.TitleQuery)

	var matched []models.Note
	for _, note := range all {
		if titleQuery != "" && !strings.Contains(strings.ToLower(note.Title), titleQuery) {
			continue
		}
		if p.Color != "" && note.Color != p.Color {
			continue
		}
		if len(p.Tags) > 0 && !hasAnyTag(note.Tags, p.Tags) {
			continue
		}
		matched = append(matched, note)
	}

	return matched, nil
}

func hasAnyTag(noteTags []string, wanted []string) bool {
	for _, tag := range noteTags {
		for _, w := range wanted {
			if tag == w {
				return true
			}
		}
	}
	return false
}
