package services

import (
	Errors "errors"
	"notehub-server/errors"
	"notehub-server/global"
	"notehub-server/helpers"
	"notehub-server/models"
	"notehub-server/schemas"
	"notehub-server/store"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (s *Service) issueSession(c *fiber.Ctx, user models.User) (schemas.AuthResponseSchema, error) {

	sessionID, err := helpers.RandomTokenString(20)
	if err != nil {
		return schemas.AuthResponseSchema{}, errors.HandleInternalError(c, "session_id", "hex token error")
	}

	if err = s.Store.PutSession(c.Context(), sessionID, user.ID, c.IP()); err != nil {
		return schemas.AuthResponseSchema{}, errors.HandleInternalError(c, "put_session", "Redis: "+err.Error())
	}

	token, err := helpers.GenerateJWT(user.ID, sessionID)
	if err != nil {
		return schemas.AuthResponseSchema{}, errors.HandleInternalError(c, "jwt", "jwt: "+err.Error())
	}

	return schemas.AuthResponseSchema{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Token:  token,
	}, nil
}

// Register creates an account and logs it in
func (s *Service) Register(c *fiber.Ctx) error {

	req := new(schemas.RegisterSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	req.Email = strings.ToLower(req.Email)

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.HandleInternalError(c, "password", "hashing error")
	}

	user, err := s.Store.CreateUser(c.Context(), req.Name, req.Email, string(passwordHash))
	if err != nil {
		if Errors.Is(err, store.ErrEmailTaken) {
			return errors.HandleBadRequestError(c, "Email", "exists")
		}
		return errors.HandleInternalError(c, "create_user", "ScyllaDB: "+err.Error())
	}

	res, err := s.issueSession(c, user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login checks credentials and opens a session
func (s *Service) Login(c *fiber.Ctx) error {

	req := new(schemas.LoginSchema)

	if err := c.BodyParser(req); err != nil {
		return errors.HandleBadJsonError(c)
	}

	if err := global.Validator.Struct(req); err != nil {
		return errors.HandleValidatorError(c, err)
	}

	user, err := s.Store.UserByEmail(c.Context(), strings.ToLower(req.Email))
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return errors.HandleUnauthorizedError(c)
		}
		return errors.HandleInternalError(c, "user_by_email", "ScyllaDB: "+err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return errors.HandleUnauthorizedError(c)
	}

	res, err := s.issueSession(c, user)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

// Logout revokes the caller's session
func (s *Service) Logout(c *fiber.Ctx) error {

	sessionID := c.Locals("sessionid").(string)

	if err := s.Store.DeleteSession(c.Context(), sessionID); err != nil {
		return errors.HandleInternalError(c, "delete_session", "Redis: "+err.Error())
	}

	return helpers.OKResponse(c)
}

// Me returns the caller's own profile
func (s *Service) Me(c *fiber.Ctx) error {

	user, err := s.Store.UserByID(c.Context(), c.Locals("userid").(string))
	if err != nil {
		if Errors.Is(err, store.ErrNotFound) {
			return errors.HandleUnauthorizedError(c)
		}
		return errors.HandleInternalError(c, "user_by_id", "ScyllaDB: "+err.Error())
	}

	return c.Status(fiber.StatusOK).JSON(publicUserSchema(user.Public()))
}
