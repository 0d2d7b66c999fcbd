package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"placehub-backend/dto"
	"placehub-backend/internal/models"
	"placehub-backend/internal/repository"
	"placehub-backend/internal/services"
)

// POST /api/auth/signup

// SignupHandler godoc
// @Summary      Register with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body  dto.SignupDTO  true  "Credentials"
// @Success      201  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func SignupHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SignupDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		user, token, err := auth.Signup(c.Context(), body.Email, body.Password)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.Status(fiber.StatusConflict).
				JSON(dto.Error("An account with this email already exists."))
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
		}

		return c.Status(fiber.StatusCreated).JSON(authResponse(user, token))
	}
}

// POST /api/auth/login

// LoginHandler godoc
// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body  dto.LoginDTO  true  "Credentials"
// @Success      200  {object}  dto.AuthResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func LoginHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		user, token, err := auth.Login(c.Context(), body.Email, body.Password)
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Error("Invalid email or password."))
		}
		if err != nil {
			log.Printf("login: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to log in right now."))
		}

		return c.JSON(authResponse(user, token))
	}
}

// POST /api/auth/forgot-password

// ForgotPasswordHandler godoc
// @Summary      Request a password reset token
// @Description  Responds the same whether or not the email is registered
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body  dto.ForgotPasswordDTO  true  "Email"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/forgot-password [post]
func ForgotPasswordHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ForgotPasswordDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		reset, err := auth.ForgotPassword(c.Context(), body.Email)
		if err != nil {
			log.Printf("forgot password: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to process request."))
		}
		if reset != nil {
			// Mail delivery is out of band; the token only reaches the user
			// through it.
			log.Printf("password reset issued for user %s", reset.UserID.Hex())
		}

		return c.JSON(dto.MessageResponse{
			Success: true,
			Message: "If that email is registered, a reset link has been sent.",
		})
	}
}

// GET /api/auth/reset-password/:token

// VerifyResetTokenHandler godoc
// @Summary      Check whether a reset token is still valid
// @Tags         auth
// @Produce      json
// @Param        token  path  string  true  "Reset token"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password/{token} [get]
func VerifyResetTokenHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := auth.VerifyResetToken(c.Context(), c.Params("token"))
		if errors.Is(err, services.ErrResetInvalid) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.Error("Reset link is invalid or has expired."))
		}
		if err != nil {
			log.Printf("verify reset token: %v", err)
			return c.Status(fiber.StatusInternalServerError).
				JSON(dto.Error("Unable to verify token."))
		}
		return c.JSON(dto.MessageResponse{Success: true, Message: "Token is valid"})
	}
}

// POST /api/auth/reset-password

// ResetPasswordHandler godoc
// @Summary      Redeem a reset token and set a new password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        data  body  dto.ResetPasswordDTO  true  "Token and new password"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/auth/reset-password [post]
func ResetPasswordHandler(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.ResetPasswordDTO
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("invalid body"))
		}

		err := auth.ResetPassword(c.Context(), body.Token, body.Password)
		if errors.Is(err, services.ErrResetInvalid) {
			return c.Status(fiber.StatusBadRequest).
				JSON(dto.Error("Reset link is invalid or has expired."))
		}
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(err.Error()))
		}

		return c.JSON(dto.MessageResponse{Success: true, Message: "Password updated"})
	}
}

func authResponse(user *models.User, token string) dto.AuthResponse {
	return dto.AuthResponse{
		Success: true,
		Token:   token,
		User: dto.AuthUser{
			ID:               user.ID.Hex(),
			Email:            user.Email,
			ProfileCompleted: user.ProfileCompleted,
		},
	}
}
