package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ISHAsolanki/property-final/utils"
)

// JWTMiddleware guards the admin routes: every mutating property and
// category endpoint plus inquiry reads require a valid bearer token.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "Authorization header is required",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "Invalid authorization header format",
				})
			}

			claims, err := utils.ValidateJWT(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{
					"success": false, "message": "Invalid token",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			return next(c)
		}
	}
}
