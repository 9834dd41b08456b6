package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"metroll_cms/constants"
	"metroll_cms/helper"
	"metroll_cms/model"
	"metroll_cms/service"
	"metroll_cms/utils"
)

type StatisticHandler struct {
	Accounts *service.AccountService
	Stations *service.StationService
	Lines    *service.LineService
	Tickets  *service.TicketService
	Vouchers *service.VoucherService
	Orders   *service.OrderService
}

// Collect gathers every resource summary into one dashboard snapshot.
func (h *StatisticHandler) Collect(ctx context.Context) (model.DashboardStats, error) {
	stats := model.DashboardStats{GeneratedAt: time.Now()}

	accounts, err := h.Accounts.Summary(ctx)
	if err != nil {
		return stats, err
	}
	stations, err := h.Stations.Summary(ctx)
	if err != nil {
		return stats, err
	}
	lines, err := h.Lines.Summary(ctx)
	if err != nil {
		return stats, err
	}
	tickets, err := h.Tickets.Summary(ctx)
	if err != nil {
		return stats, err
	}
	vouchers, err := h.Vouchers.Summary(ctx)
	if err != nil {
		return stats, err
	}
	orders, err := h.Orders.Summary(ctx)
	if err != nil {
		return stats, err
	}

	stats.Accounts = accounts
	stats.Stations = stations
	stats.Lines = lines
	stats.Tickets = tickets
	stats.Vouchers = vouchers
	stats.Orders = orders
	return stats, nil
}

func (h *StatisticHandler) GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	stats, err := h.Collect(sessionContext(c))
	if err != nil {
		return utils.RespondClientError(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetStatusMeta serves the per-enum label/color tables the admin screens
// render status badges from.
func GetStatusMeta(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"roles":              model.RoleMeta,
		"stationStatuses":    model.StationStatusMeta,
		"lineStatuses":       model.LineStatusMeta,
		"ticketStatuses":     model.TicketStatusMeta,
		"ticketTypes":        model.TicketTypeMeta,
		"voucherStatuses":    model.VoucherStatusMeta,
		"packageStatuses":    model.PackageStatusMeta,
		"assignmentStatuses": model.AssignmentStatusMeta,
		"orderStatuses":      model.OrderStatusMeta,
	})
}
