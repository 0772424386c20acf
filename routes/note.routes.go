package routes

import (
	"notehub-server/middlewares"
	"notehub-server/services"

	"github.com/gofiber/fiber/v2"
)

func noteRoutes(api fiber.Router, svc *services.Service, mw *middlewares.Middleware) {
	notes := api.Group("/notes")
	notes.Use(mw.Authenticate)

	notes.Get("/", svc.GetNotes)
	notes.Post("/", svc.CreateNote)
	notes.Get("/search", svc.GetNotes)
	notes.Get("/shared-with-me", svc.SharedWithMe)
	notes.Get("/:id", svc.GetNote)
	notes.Put("/:id", svc.UpdateNote)
	notes.Delete("/:id", svc.DeleteNote)

	notes.Post("/:id/share", svc.ShareNote)
	notes.Delete("/:id/share/:userId", svc.UnshareNote)

	notes.Get("/:id/attachments", svc.ListAttachments)
	notes.Post("/:id/attachments", svc.UploadAttachment)
	notes.Get("/:id/attachments/:attachmentId", svc.DownloadAttachment)
	notes.Delete("/:id/attachments/:attachmentId", svc.DeleteAttachment)
}
