package models

import "time"

// Note colors
const (
	ColorYellow = "yellow"
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorPink   = "pink"
	ColorPurple = "purple"
)

// Note is a user-authored note. OwnerID never changes after creation.
// IsShared is derived: true iff SharedWith is non-empty.
type Note struct {
	ID           string
	OwnerID      string
	Title        string
	Content      string
	Color        string
	Tags         []string
	SharedWith   []string
	IsShared     bool
	AllowEditing bool
	Created      time.Time
	Modified     time.Time
}

// SharedWithUser reports whether the note has a share grant for the user
func (n Note) SharedWithUser(userID string) bool {
	for _, id := range n.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}

// ShareGrant is a viewer's entry point to a note shared with them, with the
// owner profile denormalized into the row
type ShareGrant struct {
	UserID  string
	NoteID  string
	OwnerID string
	Owner   PublicUser
	Created time.Time
}

// Attachment is the metadata of a binary blob attached to a note
type Attachment struct {
	NoteID      string
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Created     time.Time
}
