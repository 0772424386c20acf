package services

import (
	Errors "errors"
	"notehub-server/errors"
	"notehub-server/global"
	"notehub-server/helpers"
	"notehub-server/models"
	"notehub-server/notes"
	"notehub-server/schemas"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (s *Service) noteResponse(c *fiber.Ctx, note models.Note) (schemas.NoteSchema, error) {

	sharedWith, err := s.Store.UsersByIDs(c.Context(), note.SharedWith)
	if err != nil {
		return schemas.NoteSchema{}, errors.HandleInternalError(c, "users_by_ids", "ScyllaDB: "+err.Error())
	}

	return noteSchema(note, sharedWith), nil
}

func (s *Service) noteResponses(c *fiber.Ctx, all []models.Note) ([]schemas.NoteSchema, error) {

	res := make([]schemas.NoteSchema, 0, len(all))
	for _, note := range all {
		schema, err := s.noteResponse(c, note)
		if err != nil {
			return nil, err
		}
		res = append(res, schema)
	}

	return res, nil
}

func handleNoteError(c *fiber.Ctx, problem string, err error) error {
	switch {
	case Errors.Is(err, notes.ErrNoteNotFound):
		return errors.HandleNotFoundError(c, "NoteID", "unknown")
	case Errors.Is(err, notes.ErrUserNotFound):
		return errors.HandleNotFoundError(c, "UserID", "unknown")
	case Errors.Is(err, notes.ErrNotFriend):
		return errors.HandleForbiddenError(c, "UserID", "not a friend")
	case Errors.Is(err, notes.ErrForbidden):
		return errors.HandleForbiddenError(c, "NoteID", "not permitted")
	case Errors.Is(err, notes.ErrAttachmentNotFound):
		return errors.HandleNotFoundError(c, "AttachmentID", "unknown")
	}
	return errors.HandleInternalError(c, problem, err.Error())
}

// CreateNote makes a new note, optionally shared with friends right away
func (s *Service) CreateNote(c *fiber.Ctx) error {

	req := new(schemas.CreateNoteSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	owner, err := s.Store.UserByID(c.Context(), c.Locals("userid").(string))
	if err != nil {
		return errors.HandleInternalError(c, "user_by_id", "ScyllaDB: "+err.Error())
	}

	note, err := s.Notes.Create(c.Context(), owner, notes.CreateParams{
		Title:        req.Title,
		Content:      req.Content,
		Color:        req.Color,
		Tags:         req.Tags,
		SharedWith:   req.SharedWith,
		AllowEditing: req.AllowEditing,
	})
	if err != nil {
		return handleNoteError(c, "create_note", err)
	}

	res, err := s.noteResponse(c, note)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// GetNotes lists the caller's notes; search, tags and color query
// parameters filter the result
func (s *Service) GetNotes(c *fiber.Ctx) error {

	selfID := c.Locals("userid").(string)

	var tags []string
	if raw := c.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	all, err := s.Notes.Search(c.Context(), selfID, notes.SearchParams{
		TitleQuery: c.Query("q"),
		Tags:       tags,
		Color:      c.Query("color"),
	})
	if err != nil {
		return errors.HandleInternalError(c, "search_notes", "ScyllaDB: "+err.Error())
	}

	res, err := s.noteResponses(c, all)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// GetNote reads one note the caller owns or was granted
func (s *Service) GetNote(c *fiber.Ctx) error {

	note, _, err := s.Notes.Resolve(c.Context(), c.Locals("userid").(string), c.Params("id"))
	if err != nil {
		return handleNoteError(c, "get_note", err)
	}

	res, err := s.noteResponse(c, note)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// UpdateNote edits a note; share recipients may edit only when the owner
// enabled editing
func (s *Service) UpdateNote(c *fiber.Ctx) error {

	req := new(schemas.UpdateNoteSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	note, err := s.Notes.Update(c.Context(), c.Locals("userid").(string), c.Params("id"), notes.UpdateParams{
		Title:        req.Title,
		Content:      req.Content,
		Color:        req.Color,
		Tags:         req.Tags,
		AllowEditing: req.AllowEditing,
	})
	if err != nil {
		return handleNoteError(c, "update_note", err)
	}

	res, err := s.noteResponse(c, note)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// DeleteNote removes an owned note with its grants and attachments
func (s *Service) DeleteNote(c *fiber.Ctx) error {

	err := s.Notes.Delete(c.Context(), c.Locals("userid").(string), c.Params("id"))
	if err != nil {
		return handleNoteError(c, "delete_note", err)
	}

	return helpers.OKResponse(c)
}
