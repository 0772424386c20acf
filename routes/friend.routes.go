package routes

import (
	"notehub-server/middlewares"
	"notehub-server/services"

	"github.com/gofiber/fiber/v2"
)

func friendRoutes(api fiber.Router, svc *services.Service, mw *middlewares.Middleware) {
	friends := api.Group("/friends")
	friends.Use(mw.Authenticate)

	friends.Get("/", svc.GetFriends)
	friends.Post("/request", svc.SendFriendRequest)
	friends.Post("/accept", svc.AcceptFriendRequest)
	friends.Delete("/:id", svc.RemoveRelation)
}
