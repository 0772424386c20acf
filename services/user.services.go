package services

import (
	"notehub-server/errors"
	"notehub-server/models"
	"notehub-server/schemas"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ListUsers lists every other account annotated with the caller's
// relationship to it, optionally filtered by name or email substring
func (s *Service) ListUsers(c *fiber.Ctx) error {

	selfID := c.Locals("userid").(string)

	users, err := s.Store.AllUsersExcept(c.Context(), selfID)
	if err != nil {
		return errors.HandleInternalError(c, "list_users", "ScyllaDB: "+err.Error())
	}

	lists, err := s.Graph.Relations(c.Context(), selfID)
	if err != nil {
		return errors.HandleInternalError(c, "relations", "ScyllaDB: "+err.Error())
	}

	statuses := make(map[string]models.FriendStatus)
	for _, rel := range lists.Friends {
		statuses[rel.PeerID] = models.FriendStatus{IsFriend: true}
	}
	for _, rel := range lists.Incoming {
		statuses[rel.PeerID] = models.FriendStatus{HasIncomingRequest: true}
	}
	for _, rel := range lists.Outgoing {
		statuses[rel.PeerID] = models.FriendStatus{HasSentRequest: true}
	}

	search := strings.ToLower(c.Query("search"))

	res := make([]schemas.UserWithStatusSchema, 0, len(users))
	for _, user := range users {
		if search != "" &&
			!strings.Contains(strings.ToLower(user.Name), search) &&
			!strings.Contains(strings.ToLower(user.Email), search) {
			continue
		}
		status := statuses[user.ID]
		res = append(res, schemas.UserWithStatusSchema{
			UserID:             user.ID,
			Name:               user.Name,
			Email:              user.Email,
			IsFriend:           status.IsFriend,
			HasIncomingRequest: status.HasIncomingRequest,
			HasSentRequest:     status.HasSentRequest,
		})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
