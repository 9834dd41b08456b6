package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/helper"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type AuthHandler struct {
	Auth     *service.AuthService
	Accounts *service.AccountService
}

// Login exchanges the identity-provider token for a CMS session and sets
// the session cookie the admin UI rides on.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input, ok := c.Locals("inputLogin").(model.LoginInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse login input fail"))
	}

	sess, token, err := h.Auth.Login(c.Context(), input.IDToken)
	if err != nil {
		return utils.RespondClientError(c, err)
	}

	utils.SetSessionCookie(c, token, sess.ExpiresAt)
	return c.JSON(fiber.Map{
		"message": "login success",
		"account": fiber.Map{
			"id":    sess.AccountID,
			"email": sess.Email,
			"role":  sess.Role,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess := helper.SessionFromLocals(c); sess != nil {
		if err := h.Auth.Logout(c.Context(), sess.ID); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}
	utils.ClearSessionCookie(c)
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "logged out"})
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	account, err := h.Accounts.Get(sessionContext(c), claim.AccountID)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}
