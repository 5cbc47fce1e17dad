package authController

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"coursehub/errs"
	"coursehub/middleware"
	"coursehub/models"
	"coursehub/services/identity"
	"coursehub/utils"
	authValidator "coursehub/validators/auth"
)

type Handler struct {
	users  *identity.Store
	mailer *utils.Mailer
}

func New(users *identity.Store, mailer *utils.Mailer) *Handler {
	return &Handler{users: users, mailer: mailer}
}

// session is the user plus the token that was also set as the session cookie
type session struct {
	*models.User
	Token string `json:"token"`
}

func (h *Handler) Register(c *fiber.Ctx) error {
	reqData := c.Locals("validatedRegister").(*authValidator.RegisterRequest)

	user, err := h.users.Register(c.UserContext(), reqData.Username, reqData.Email, reqData.Password)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	token, err := h.startSession(c, user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	h.mailer.SendWelcomeEmail(user.Email, user.Username)
	return middleware.JsonResponse(c, fiber.StatusCreated, session{User: user, Token: token})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	reqData := c.Locals("validatedLogin").(*authValidator.LoginRequest)

	user, err := h.users.Authenticate(c.UserContext(), reqData.Username, reqData.Password)
	if err != nil {
		zap.L().Info("login failed", zap.String("username", reqData.Username), zap.String("ip", c.IP()))
		return middleware.ErrorResponse(c, err)
	}

	token, err := h.startSession(c, user)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, session{User: user, Token: token})
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return middleware.MessageResponse(c, fiber.StatusOK, "Logged out successfully")
}

func (h *Handler) CurrentUser(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, middleware.CurrentUser(c))
}

func (h *Handler) UpdateProfile(c *fiber.Ctx) error {
	reqData := c.Locals("validatedProfile").(*authValidator.ProfileRequest)
	user := middleware.CurrentUser(c)

	updated, err := h.users.UpdateProfile(c.UserContext(), user.ID, reqData.Username, reqData.Email)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, updated)
}

func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	reqData := c.Locals("validatedPassword").(*authValidator.PasswordRequest)
	user := middleware.CurrentUser(c)

	if err := h.users.ChangePassword(c.UserContext(), user.ID, reqData.CurrentPassword, reqData.NewPassword); err != nil {
		return middleware.ErrorResponse(c, err)
	}
	return middleware.MessageResponse(c, fiber.StatusOK, "Password updated successfully")
}

func (h *Handler) startSession(c *fiber.Ctx, user *models.User) (string, error) {
	token, err := middleware.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return "", errs.Wrap(errs.KindInternal, "auth.startSession", "failed to sign token", err)
	}
	middleware.SetSessionCookie(c, token)
	return token, nil
}
