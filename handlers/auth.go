package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ISHAsolanki/property-final/models"
	"github.com/ISHAsolanki/property-final/store"
	"github.com/ISHAsolanki/property-final/utils"
)

type UserGateway interface {
	Create(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Count(ctx context.Context) (int64, error)
}

type AuthController struct {
	store UserGateway
}

func NewAuthController() *AuthController {
	return &AuthController{store: store.NewUserStore()}
}

func NewAuthControllerWith(gw UserGateway) *AuthController {
	return &AuthController{store: gw}
}

// Register creates the admin account. Once one exists, registration closes.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Email, name and a password of at least 6 characters are required",
		})
	}

	ctx := c.Request().Context()
	count, err := ac.store.Count(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusForbidden, echo.Map{
			"success": false, "message": "Admin already registered",
		})
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}

	user, err := ac.store.Create(ctx, models.User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{
				"success": false, "message": "User with this email already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Internal server error",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to generate token",
		})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "token": token, "user": user})
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Email and password are required",
		})
	}

	user, err := ac.store.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false, "message": "Invalid email or password",
		})
	}
	if err := utils.CheckPassword(user.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"success": false, "message": "Invalid email or password",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to generate token",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": token, "user": user})
}
