package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/helper"
	"metroll_cms/utils"
)

// Protected validates the CMS session JWT (cookie or bearer header),
// loads the live session from the store, and stashes both in Locals for
// handlers. A token whose session is gone (logged out, upstream 401) is
// rejected the same way as a bad token.
func Protected(sessions helper.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")
		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, errors.New("no token"))
		}

		claim, err := helper.ParseSessionToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}

		sess, err := sessions.Get(c.Context(), claim.SessionID)
		if err != nil {
			utils.ClearSessionCookie(c)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  constants.SESSION_EXPIRED,
				"error":    constants.SESSION_EXPIRED,
				"redirect": constants.SIGN_IN_ROUTE,
			})
		}

		c.Locals("user", claim)
		c.Locals("session", sess)
		return c.Next()
	}
}

// AdminOnly gates a route on the Admin role; must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
		}
		return c.Next()
	}
}
