package handler

import (
	"github.com/gofiber/fiber/v2"

	"metroll_cms/service"
	"metroll_cms/utils"
)

type TicketHandler struct {
	Tickets *service.TicketService
}

func (h *TicketHandler) GetTickets(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	filters := utils.ParseFilters(c, "search", "status", "ticketType", "orderDetailId")
	page, err := h.Tickets.List(sessionContext(c), pageable, filters)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

func (h *TicketHandler) GetTicketByNumber(c *fiber.Ctx) error {
	ticket, err := h.Tickets.GetByNumber(sessionContext(c), c.Params("number"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTicketValidations lists the entry/exit log of one ticket; the log is
// append-only so there is nothing else to do with it.
func (h *TicketHandler) GetTicketValidations(c *fiber.Ctx) error {
	pageable := utils.ParsePageable(c)
	page, err := h.Tickets.Validations(sessionContext(c), c.Params("ticketId"), pageable)
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, page)
}

// GetTicketQR renders the ticket number as a PNG QR code for the gate
// scanners at the station counter.
func (h *TicketHandler) GetTicketQR(c *fiber.Ctx) error {
	ticket, err := h.Tickets.GetByNumber(sessionContext(c), c.Params("number"))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	png, err := utils.GenerateQRCode(ticket.TicketNumber, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot generate QR code", err)
	}
	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

func (h *TicketHandler) GetTicketSummary(c *fiber.Ctx) error {
	summary, err := h.Tickets.Summary(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}
