package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type VoucherHandler struct {
	Vouchers *service.VoucherService
}

func (h *VoucherHandler) GetVouchers(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "status", "ownerId")
	page, err := h.Vouchers.List(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *VoucherHandler) GetVoucherById(c *fiber.Ctx) error {
	voucher, err := h.Vouchers.Get(sessionContext(c), c.Params("voucherId"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, voucher)
}

func (h *VoucherHandler) CreateVoucher(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateVoucher").(model.CreateVoucherInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse create voucher fail"))
	}
	voucher, err := h.Vouchers.Create(sessionContext(c), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, voucher)
}

func (h *VoucherHandler) UpdateVoucher(c *fiber.Ctx) error {
	input, ok := c.Locals("inputUpdateVoucher").(model.UpdateVoucherInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse update voucher fail"))
	}
	voucher, err := h.Vouchers.Update(sessionContext(c), c.Params("voucherId"), input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, voucher)
}

func (h *VoucherHandler) RevokeVoucher(c *fiber.Ctx) error {
	voucher, err := h.Vouchers.Revoke(sessionContext(c), c.Params("voucherId"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, voucher)
}

func (h *VoucherHandler) GetVoucherSummary(c *fiber.Ctx) error {
	summary, err := h.Vouchers.Summary(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
