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

type OrderHandler struct {
	Orders *service.OrderService
}

func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "status", "customerId", "staffId")
	page, err := h.Orders.List(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *OrderHandler) GetOrderById(c *fiber.Ctx) error {
	order, err := h.Orders.Get(sessionContext(c), c.Params("orderId"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// Checkout runs the cart through the order service under the identity of
// the staff member at the counter.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCheckout").(model.CheckoutInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse checkout fail"))
	}
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	order, err := h.Orders.Checkout(sessionContext(c), claim.AccountID, input)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func (h *OrderHandler) GetOrderSummary(c *fiber.Ctx) error {
	summary, err := h.Orders.Summary(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
