package schemas

// CreateNoteSchema struct
type CreateNoteSchema struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Content      string   `json:"content" validate:"required"`
	Color        string   `json:"color" validate:"omitempty,oneof=yellow green blue pink purple"`
	Tags         []string `json:"tags" validate:"omitempty,dive,max=50"`
	SharedWith   []string `json:"sharedWith" validate:"omitempty,dive,required"`
	AllowEditing bool     `json:"allowEditing"`
}

// UpdateNoteSchema struct (nil fields are left untouched)
type UpdateNoteSchema struct {
	Title        *string   `json:"title" validate:"omitempty,max=200"`
	Content      *string   `json:"content"`
	Color        *string   `json:"color" validate:"omitempty,oneof=yellow green blue pink purple"`
	Tags         *[]string `json:"tags" validate:"omitempty,dive,max=50"`
	AllowEditing *bool     `json:"allowEditing"`
}

// ShareNoteSchema struct
type ShareNoteSchema struct {
	UserID string `json:"userId" validate:"required"`
}

// NoteSchema struct
type NoteSchema struct {
	NoteID       string
	OwnerID      string
	Title        string
	Content      string
	Color        string
	Tags         []string
	SharedWith   []PublicUserSchema
	IsShared     bool
	AllowEditing bool
	Created      int64
	Modified     int64
}

// SharedNoteSchema annotates a shared note with its owner's public profile
type SharedNoteSchema struct {
	NoteSchema
	Owner PublicUserSchema
}

// AttachmentSchema struct
type AttachmentSchema struct {
	AttachmentID string
	Filename     string
	ContentType  string
	Size         int64
	Created      int64
}
