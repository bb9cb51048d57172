package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/bloomwellness/studio-api/config"
	"github.com/bloomwellness/studio-api/middleware"
	"github.com/bloomwellness/studio-api/models"
	"github.com/bloomwellness/studio-api/store"
	"github.com/bloomwellness/studio-api/utils"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthController struct {
	Cfg   *config.Config
	Store store.Store
}

func NewAuthController(cfg *config.Config, st store.Store) *AuthController {
	return &AuthController{Cfg: cfg, Store: st}
}

// Me returns the current session's user, or null for anonymous callers.
// The user is resolved from the store so role changes take effect without
// a new sign-in; in degraded mode the session claims are echoed back.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	openID, _ := c.Locals(middleware.LocalOpenID).(string)
	if openID == "" {
		return c.JSON(nil)
	}

	user, _ := ac.Store.GetUserByOpenID(openID)
	if user == nil {
		name, _ := c.Locals(middleware.LocalUserName).(string)
		role, _ := c.Locals(middleware.LocalRole).(string)
		return c.JSON(fiber.Map{"openId": openID, "name": name, "role": role})
	}
	return c.JSON(user)
}

type callbackRequest struct {
	Token string `json:"token" validate:"required"`
}

// Callback completes an external sign-in. The auth subsystem posts a signed
// identity token; its claims are upserted into the users table (the
// configured owner is promoted to admin) and a session cookie is issued.
func (ac *AuthController) Callback(c *fiber.Ctx) error {
	req := new(callbackRequest)
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "Cannot parse JSON", err)
	}
	if fields := utils.ValidateStruct(req); fields != nil {
		return validationFailed(c, fields)
	}

	claims, err := ac.parseIdentityToken(req.Token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "Invalid identity token",
			Error:   err.Error(),
		})
	}

	openID, _ := claims["openId"].(string)
	now := time.Now()
	upsert := store.UserUpsert{OpenID: openID, LastSignedIn: &now}
	if name, ok := claims["name"].(string); ok {
		upsert.Name = &name
	}
	if email, ok := claims["email"].(string); ok {
		upsert.Email = &email
	}
	if method, ok := claims["loginMethod"].(string); ok {
		upsert.LoginMethod = &method
	}

	if err := ac.Store.UpsertUser(upsert); err != nil {
		if err == store.ErrOpenIDRequired {
			return badRequest(c, "Missing openId in identity token", err)
		}
		return internalError(c, "Failed to sign in")
	}

	user, _ := ac.Store.GetUserByOpenID(openID)
	name, role := "", models.RoleUser
	if upsert.Name != nil {
		name = *upsert.Name
	}
	if user != nil {
		name, role = user.Name, user.Role
	} else if ac.Cfg.IsOwner(openID) {
		role = models.RoleAdmin
	}

	session, err := ac.issueSession(openID, name, role)
	if err != nil {
		return internalError(c, "Failed to issue session")
	}
	c.Cookie(&fiber.Cookie{
		Name:     ac.Cfg.SessionCookieName,
		Value:    session,
		Expires:  now.Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	if user != nil {
		return c.JSON(user)
	}
	return c.JSON(fiber.Map{"openId": openID, "name": name, "role": role})
}

// Logout clears the session cookie. Always succeeds, session or not.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     ac.Cfg.SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(fiber.Map{"success": true})
}

func (ac *AuthController) parseIdentityToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(ac.Cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if openID, _ := claims["openId"].(string); openID == "" {
		return nil, fmt.Errorf("missing openId claim")
	}
	return claims, nil
}

func (ac *AuthController) issueSession(openID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"openId": openID,
		"name":   name,
		"role":   role,
		"exp":    time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.Cfg.JWTSecret))
}
