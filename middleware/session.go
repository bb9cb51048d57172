package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"

	"github.com/bloomwellness/studio-api/config"
)

// Locals keys set by the session middleware.
const (
	LocalOpenID   = "openID"
	LocalUserName = "userName"
	LocalRole     = "role"
)

// Protected requires a valid session cookie. The identity claims are copied
// into locals for the handlers.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		TokenLookup:  "cookie:" + cfg.SessionCookieName,
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return jwtError(c, fmt.Errorf("no token in context"))
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return jwtError(c, fmt.Errorf("invalid token claims"))
			}
			if !setIdentity(c, claims) {
				return jwtError(c, fmt.Errorf("no openId in token"))
			}
			return c.Next()
		},
	})
}

// Session is the optional variant of Protected: a missing or invalid cookie
// leaves the request anonymous instead of rejecting it. Used where the
// current user is nullable, e.g. auth.me.
func Session(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cfg.SessionCookieName)
		if raw == "" {
			return c.Next()
		}
		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Next()
		}
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			setIdentity(c, claims)
		}
		return c.Next()
	}
}

// setIdentity copies the identity claims into locals. Reports false when
// the openId claim is missing.
func setIdentity(c *fiber.Ctx, claims jwt.MapClaims) bool {
	openID, _ := claims["openId"].(string)
	if openID == "" {
		return false
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	c.Locals(LocalOpenID, openID)
	c.Locals(LocalUserName, name)
	c.Locals(LocalRole, role)
	return true
}

func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired session",
	})
}
