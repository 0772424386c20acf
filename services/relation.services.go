package services

import (
	Errors "errors"
	"notehub-server/errors"
	"notehub-server/events"
	"notehub-server/global"
	"notehub-server/helpers"
	"notehub-server/relations"
	"notehub-server/schemas"

	"github.com/gofiber/fiber/v2"
)

// GetFriends returns the caller's friends plus pending requests both ways
func (s *Service) GetFriends(c *fiber.Ctx) error {

	lists, err := s.Graph.Relations(c.Context(), c.Locals("userid").(string))
	if err != nil {
		return errors.HandleInternalError(c, "relations", "ScyllaDB: "+err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(schemas.RelationsSchema{
		Friends:  relationUserSchemas(lists.Friends),
		Incoming: relationUserSchemas(lists.Incoming),
		Outgoing: relationUserSchemas(lists.Outgoing),
	})
}

// SendFriendRequest opens a pending request toward another user
func (s *Service) SendFriendRequest(c *fiber.Ctx) error {

	req := new(schemas.SendRequestSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	self, err := s.Store.UserByID(c.Context(), c.Locals("userid").(string))
	if err != nil {
		return errors.HandleInternalError(c, "user_by_id", "ScyllaDB: "+err.Error())
	}

	target, err := s.Graph.SendRequest(c.Context(), self, req.TargetUserID)
	if err != nil {
		switch {
		case Errors.Is(err, relations.ErrSelfRequest):
			return errors.HandleBadRequestError(c, "TargetUserID", "self")
		case Errors.Is(err, relations.ErrUserNotFound):
			return errors.HandleNotFoundError(c, "TargetUserID", "unknown")
		case Errors.Is(err, relations.ErrAlreadyFriends):
			return errors.HandleBadRequestError(c, "TargetUserID", "already friends")
		case Errors.Is(err, relations.ErrAlreadyRequested):
			return errors.HandleBadRequestError(c, "TargetUserID", "request pending")
		}
		return errors.HandleInternalError(c, "send_request", "ScyllaDB: "+err.Error())
	}

	s.Hub.Send(target.ID, events.OpFriendRequest, publicUserSchema(self.Public()))

	return helpers.OKResponse(c)
}

// AcceptFriendRequest promotes a pending incoming request to a friendship
func (s *Service) AcceptFriendRequest(c *fiber.Ctx) error {

	req := new(schemas.AcceptRequestSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	selfID := c.Locals("userid").(string)

	if err := s.Graph.AcceptRequest(c.Context(), selfID, req.FromUserID); err != nil {
		switch {
		case Errors.Is(err, relations.ErrUserNotFound):
			return errors.HandleNotFoundError(c, "FromUserID", "unknown")
		case Errors.Is(err, relations.ErrNoSuchRequest):
			return errors.HandleNotFoundError(c, "FromUserID", "no pending request")
		}
		return errors.HandleInternalError(c, "accept_request", "ScyllaDB: "+err.Error())
	}

	self, err := s.Store.UserByID(c.Context(), selfID)
	if errors.HandleBasicError(err) {
		return helpers.OKResponse(c)
	}
	s.Hub.Send(req.FromUserID, events.OpFriendAccepted, publicUserSchema(self.Public()))

	return helpers.OKResponse(c)
}

// RemoveRelation unfriends, declines an incoming request or cancels an
// outgoing one; removing an absent relation still succeeds
func (s *Service) RemoveRelation(c *fiber.Ctx) error {

	otherID := c.Params("id")
	selfID := c.Locals("userid").(string)

	if err := s.Graph.Remove(c.Context(), selfID, otherID); err != nil {
		if Errors.Is(err, relations.ErrUserNotFound) {
			return errors.HandleNotFoundError(c, "UserID", "unknown")
		}
		return errors.HandleInternalError(c, "remove_relation", "ScyllaDB: "+err.Error())
	}

	self, err := s.Store.UserByID(c.Context(), selfID)
	if errors.HandleBasicError(err) {
		return helpers.OKResponse(c)
	}
	s.Hub.Send(otherID, events.OpRelationGone, publicUserSchema(self.Public()))

	return helpers.OKResponse(c)
}
