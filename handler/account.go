package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type AccountHandler struct {
	Accounts *service.AccountService
}

func (h *AccountHandler) GetAccounts(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "role", "active", "assignedStation")
	page, err := h.Accounts.List(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *AccountHandler) GetAccountById(c *fiber.Ctx) error {
	account, err := h.Accounts.Get(sessionContext(c), c.Params("accountId"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func (h *AccountHandler) CreateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create account fail"))
	}
	account, err := h.Accounts.Create(sessionContext(c), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func (h *AccountHandler) UpdateAccount(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateAccount").(model.UpdateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse update account fail"))
	}
	account, err := h.Accounts.Update(sessionContext(c), c.Params("accountId"), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

// ActiveAccount toggles the active flag; deactivation is the only way an
// account ever goes away.
func (h *AccountHandler) ActiveAccount(c *fiber.Ctx) error {
	isActive, ok := c.Locals("isActive").(bool)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse isActive fail"))
	}
	account, err := h.Accounts.SetActive(sessionContext(c), c.Params("accountId"), isActive)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func (h *AccountHandler) AssignStation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputAssignStation").(model.AssignStationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse assign station fail"))
	}
	account, err := h.Accounts.AssignStation(sessionContext(c), c.Params("accountId"), input.StationCode)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func (h *AccountHandler) GetAccountSummary(c *fiber.Ctx) error {
	summary, err := h.Accounts.Summary(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
