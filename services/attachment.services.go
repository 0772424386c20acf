package services

import (
	"notehub-server/errors"
	"notehub-server/helpers"
	"notehub-server/notes"
	"notehub-server/schemas"

	"github.com/gofiber/fiber/v2"
)

// UploadAttachment stores a multipart file on an owned note
func (s *Service) UploadAttachment(c *fiber.Ctx) error {

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.HandleBadRequestError(c, "Multipart", "missing file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.HandleBadRequestError(c, "Multipart", "invalid")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	att, err := s.Notes.Attach(c.Context(), c.Locals("userid").(string), c.Params("id"), notes.AttachParams{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
	}, file)
	if err != nil {
		return handleNoteError(c, "upload_attachment", err)
	}

	return c.Status(fiber.StatusCreated).JSON(attachmentSchema(att))
}

// ListAttachments lists the attachments of a note the caller may view
func (s *Service) ListAttachments(c *fiber.Ctx) error {

	attachments, err := s.Notes.Attachments(c.Context(), c.Locals("userid").(string), c.Params("id"))
	if err != nil {
		return handleNoteError(c, "list_attachments", err)
	}

	res := make([]schemas.AttachmentSchema, 0, len(attachments))
	for _, att := range attachments {
		res = append(res, attachmentSchema(att))
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// DownloadAttachment streams an attachment blob of a note the caller may view
func (s *Service) DownloadAttachment(c *fiber.Ctx) error {

	att, r, err := s.Notes.OpenAttachment(c.Context(), c.Locals("userid").(string), c.Params("id"), c.Params("attachmentId"))
	if err != nil {
		return handleNoteError(c, "download_attachment", err)
	}

	c.Set(fiber.HeaderContentType, att.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+att.Filename+`"`)

	return c.SendStream(r, int(att.Size))
}

// DeleteAttachment removes an attachment from an owned note
func (s *Service) DeleteAttachment(c *fiber.Ctx) error {

	err := s.Notes.RemoveAttachment(c.Context(), c.Locals("userid").(string), c.Params("id"), c.Params("attachmentId"))
	if err != nil {
		return handleNoteError(c, "delete_attachment", err)
	}

	return helpers.OKResponse(c)
}
