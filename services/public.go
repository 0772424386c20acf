package services

import (
	"notehub-server/models"
	"notehub-server/schemas"
)

func publicUserSchema(u models.PublicUser) schemas.PublicUserSchema {
	return schemas.PublicUserSchema{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
	}
}

func publicUserSchemas(users []models.PublicUser) []schemas.PublicUserSchema {
	out := make([]schemas.PublicUserSchema, 0, len(users))
	for _, u := range users {
		out = append(out, publicUserSchema(u))
	}
	return out
}

func relationUserSchemas(rels []models.Relation) []schemas.PublicUserSchema {
	out := make([]schemas.PublicUserSchema, 0, len(rels))
	for _, rel := range rels {
		out = append(out, publicUserSchema(rel.Peer))
	}
	return out
}

func noteSchema(note models.Note, sharedWith []models.PublicUser) schemas.NoteSchema {
	return schemas.NoteSchema{
		NoteID:       note.ID,
		OwnerID:      note.OwnerID,
		Title:        note.Title,
		Content:      note.Content,
		Color:        note.Color,
		Tags:         note.Tags,
		SharedWith:   publicUserSchemas(sharedWith),
		IsShared:     note.IsShared,
		AllowEditing: note.AllowEditing,
		Created:      note.Created.UnixMilli(),
		Modified:     note.Modified.UnixMilli(),
	}
}

func attachmentSchema(att models.Attachment) schemas.AttachmentSchema {
	return schemas.AttachmentSchema{
		AttachmentID: att.ID,
		Filename:     att.Filename,
		ContentType:  att.ContentType,
		Size:         att.Size,
		Created:      att.Created.UnixMilli(),
	}
}
