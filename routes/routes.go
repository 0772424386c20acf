package routes

import (
	"notehub-server/config"
	"notehub-server/middlewares"
	"notehub-server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

// SetRoutes sets all routes of server
func SetRoutes(app *fiber.App, svc *services.Service, mw *middlewares.Middleware) {
	api := app.Group(config.Config.Version)
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.Config.Origin,
		AllowCredentials: true,
	}))

	app.Use("/stream", mw.AuthenticateStream, websocket.New(svc.ClientStream))

	authRoutes(api, svc, mw)
	userRoutes(api, svc, mw)
	friendRoutes(api, svc, mw)
	noteRoutes(api, svc, mw)
}
