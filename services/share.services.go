package services

import (
	"notehub-server/errors"
	"notehub-server/events"
	"notehub-server/global"
	"notehub-server/schemas"

	"github.com/gofiber/fiber/v2"
)

// ShareNote grants a friend access to an owned note
func (s *Service) ShareNote(c *fiber.Ctx) error {

	req := new(schemas.ShareNoteSchema)

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

	note, err := s.Notes.Share(c.Context(), owner, c.Params("id"), req.UserID)
	if err != nil {
		return handleNoteError(c, "share_note", err)
	}

	res, err := s.noteResponse(c, note)
	if err != nil {
		return err
	}

	s.Hub.Send(req.UserID, events.OpNoteShared, fiber.Map{
		"noteId": note.ID,
		"owner":  publicUserSchema(owner.Public()),
		"title":  note.Title,
	})

	return c.Status(fiber.StatusOK).JSON(res)
}

// UnshareNote revokes a grant on an owned note
func (s *Service) UnshareNote(c *fiber.Ctx) error {

	targetID := c.Params("userId")
	selfID := c.Locals("userid").(string)

	note, err := s.Notes.Unshare(c.Context(), selfID, c.Params("id"), targetID)
	if err != nil {
		return handleNoteError(c, "unshare_note", err)
	}

	res, err := s.noteResponse(c, note)
	if err != nil {
		return err
	}

	s.Hub.Send(targetID, events.OpNoteUnshared, fiber.Map{
		"noteId": note.ID,
	})

	return c.Status(fiber.StatusOK).JSON(res)
}

// SharedWithMe lists the notes other users shared with the caller
func (s *Service) SharedWithMe(c *fiber.Ctx) error {

	shared, err := s.Notes.SharedWithMe(c.Context(), c.Locals("userid").(string))
	if err != nil {
		return errors.HandleInternalError(c, "shared_with_me", "ScyllaDB: "+err.Error())
	}

	res := make([]schemas.SharedNoteSchema, 0, len(shared))
	for _, sn := range shared {
		schema, err := s.noteResponse(c, sn.Note)
		if err != nil {
			return err
		}
		res = append(res, schemas.SharedNoteSchema{
			NoteSchema: schema,
			Owner:      publicUserSchema(sn.Owner),
		})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
