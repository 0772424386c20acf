package routes

import (
	"notehub-server/middlewares"
	"notehub-server/services"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(api fiber.Router, svc *services.Service, mw *middlewares.Middleware) {
	auth := api.Group("/auth")
	auth.Post("/register", svc.Register)
	auth.Post("/login", svc.Login)
	auth.Post("/logout", mw.Authenticate, svc.Logout)
}
