package http

import (
	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

// Login godoc
// @Summary Log in
// @Description Mock login: simulates a delay and always succeeds. The display name is derived from the email's local part.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/auth/login [post]
func (r *routes) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	user, err := r.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		r.l.Error(err, map[string]any{"email": req.Email})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to log in",
		})
	}

	return c.JSON(user)
}

func (r *routes) handleRegister(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	user, err := r.auth.Register(c.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		r.l.Error(err, map[string]any{"email": req.Email})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to register",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (r *routes) handleLogout(c *fiber.Ctx) error {
	if err := r.auth.Logout(); err != nil {
		r.l.Error(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "failed to log out",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSession godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} sessionResponse
// @Router /api/v1/auth/session [get]
func (r *routes) handleSession(c *fiber.Ctx) error {
	user := r.auth.CurrentUser()
	return c.JSON(sessionResponse{
		Authenticated: user != nil,
		User:          user,
	})
}
