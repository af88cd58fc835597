package controllers

import (
	"time"

	"Backend-Career-Advisor/src/middleware"
	"Backend-Career-Advisor/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminCredentials is the single configured admin account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

type AuthController struct {
	issuer    *utils.TokenIssuer
	blacklist *utils.TokenBlacklist
	admin     AdminCredentials
	validate  *validator.Validate
}

func NewAuthController(issuer *utils.TokenIssuer, blacklist *utils.TokenBlacklist, admin AdminCredentials, validate *validator.Validate) *AuthController {
	return &AuthController{issuer: issuer, blacklist: blacklist, admin: admin, validate: validate}
}

// Login godoc
// @Summary      Admin login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body controllers.LoginRequest true "Credentials"
// @Success      200  {object}  controllers.LoginResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctrl.validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Username and password are required")
	}

	if req.Username != ctrl.admin.Username || !utils.CheckPassword(ctrl.admin.PasswordHash, req.Password) {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := ctrl.issuer.Generate(req.Username, utils.RoleAdmin)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(LoginResponse{Token: token, ExpiresAt: time.Now().Add(ctrl.issuer.TTL())})
}

// Logout godoc
// @Summary      Revoke the current admin token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/logout [post]
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	token, ok := middleware.BearerToken(c)
	if !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Missing or invalid Authorization header")
	}
	claims, err := ctrl.issuer.Parse(token)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Invalid or expired token")
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if err := ctrl.blacklist.Add(c.UserContext(), token, remaining); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}
