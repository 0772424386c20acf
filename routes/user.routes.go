package routes

import (
	"notehub-server/middlewares"
	"notehub-server/services"

	"github.com/gofiber/fiber/v2"
)

func userRoutes(api fiber.Router, svc *services.Service, mw *middlewares.Middleware) {
	users := api.Group("/users")
	users.Use(mw.Authenticate)

	users.Get("/", svc.ListUsers)
	users.Get("/me", svc.Me)
}
