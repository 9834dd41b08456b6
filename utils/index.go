package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/client"
	"metroll_cms/constants"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// RespondClientError maps a tagged upstream error onto an HTTP answer.
// Auth errors are fatal to the session: cookies are cleared and the UI is
// pointed back at the sign-in route. Everything else leaves the caller's
// form intact for correction and resubmission.
func RespondClientError(c *fiber.Ctx, err error) error {
	ce := client.AsError(err)
	switch ce.Kind {
	case client.KindAuth:
		ClearSessionCookie(c)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message":  constants.SESSION_EXPIRED,
			"error":    ce.Message,
			"redirect": constants.SIGN_IN_ROUTE,
		})
	case client.KindValidation:
		return ErrorResponse(c, fiber.StatusBadRequest, ce.Message, ce)
	case client.KindNetwork:
		return ErrorResponse(c, fiber.StatusBadGateway, constants.UPSTREAM_UNREACHABLE, ce)
	default:
		return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UNKNOWN, ce)
	}
}

func SetSessionCookie(c *fiber.Ctx, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
}

func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "None",
		Path:     "/",
	})
}

func Ptr[T any](v T) *T {
	return &v
}
