package middlewares

import (
	Errors "errors"
	"notehub-server/errors"
	"notehub-server/global"
	"notehub-server/helpers"
	"notehub-server/store"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// Middleware carries the store handle the auth middlewares check sessions
// against
type Middleware struct {
	Store *store.Store
}

// New builds the middleware set over a store handle
func New(s *store.Store) *Middleware {
	return &Middleware{Store: s}
}

func (m *Middleware) authenticateToken(c *fiber.Ctx, accessToken string) error {

	if accessToken == "" {
		return errors.HandleUnauthorizedError(c)
	}

	userID, sessionID, err := helpers.ParseJWT(accessToken)
	if err != nil {
		return errors.HandleUnauthorizedError(c)
	}

	sessionUserID, err := m.Store.SessionUserID(c.Context(), sessionID)
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return errors.HandleUnauthorizedError(c)
		}
		return errors.HandleInternalError(c, "get_session", "Redis: "+err.Error())
	}
	if sessionUserID != userID {
		global.MonitorLogger.Println("ip: " + c.IP() + "; Problem: session_user_mismatch; Session: " + sessionID)
		return errors.HandleUnauthorizedError(c)
	}

	c.Locals("userid", userID)
	c.Locals("sessionid", sessionID)
	return c.Next()
}

// Authenticate validates the bearer token and its backing session
func (m *Middleware) Authenticate(c *fiber.Ctx) error {

	authorization := string(c.Request().Header.Peek("Authorization"))
	parts := strings.Split(authorization, "Bearer ")
	if len(parts) != 2 {
		return errors.HandleUnauthorizedError(c)
	}

	return m.authenticateToken(c, parts[1])
}

// AuthenticateStream authenticates websocket connection
func (m *Middleware) AuthenticateStream(c *fiber.Ctx) error {

	if websocket.IsWebSocketUpgrade(c) {
		return m.authenticateToken(c, c.Query("token"))
	}

	return errors.HandleInternalError(c, "websocket_upgrade", fiber.ErrUpgradeRequired.Error())
}
