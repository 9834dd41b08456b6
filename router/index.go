package router

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"metroll_cms/handler"
	"metroll_cms/helper"
	"metroll_cms/middleware"
	"metroll_cms/validate"
)

// Handlers bundles every route handler so main can wire them in one place.
type Handlers struct {
	Auth      *handler.AuthHandler
	Accounts  *handler.AccountHandler
	Stations  *handler.StationHandler
	Lines     *handler.LineHandler
	Tickets   *handler.TicketHandler
	Vouchers  *handler.VoucherHandler
	Discounts *handler.DiscountHandler
	Orders    *handler.OrderHandler
	Stats     *handler.StatisticHandler
	Dashboard *handler.DashboardWebsocket
}

func SetupRoutes(app *fiber.App, h Handlers, sessions helper.SessionStore) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	protected := middleware.Protected(sessions)
	adminOnly := middleware.AdminOnly()

	auth := v1.Group("/auth")
	auth.Post("/login", validate.Login(), h.Auth.Login)
	auth.Post("/logout", protected, h.Auth.Logout)
	auth.Get("/me", protected, h.Auth.Me)

	account := v1.Group("/account", logger.New())
	account.Get("/", protected, adminOnly, h.Accounts.GetAccounts)
	account.Get("/summary", protected, adminOnly, h.Accounts.GetAccountSummary)
	account.Get("/:accountId", protected, adminOnly, h.Accounts.GetAccountById)
	account.Post("/", protected, adminOnly, validate.CreateAccount(), h.Accounts.CreateAccount)
	account.Put("/:accountId", protected, adminOnly, validate.UpdateAccount(), h.Accounts.UpdateAccount)
	account.Patch("/:accountId/active", protected, adminOnly, validate.ActiveAccount(), h.Accounts.ActiveAccount)
	account.Put("/:accountId/station", protected, adminOnly, validate.AssignStation(), h.Accounts.AssignStation)

	station := v1.Group("/station", logger.New())
	station.Get("/", protected, h.Stations.GetStations)
	station.Get("/summary", protected, h.Stations.GetStationSummary)
	station.Get("/:code", protected, h.Stations.GetStationByCode)
	station.Post("/", protected, adminOnly, validate.SaveStation(), h.Stations.CreateStation)
	station.Put("/:code", protected, adminOnly, validate.UpdateStation(), h.Stations.UpdateStation)
	station.Patch("/:code/status", protected, adminOnly, validate.StationStatus(), h.Stations.StationStatus)

	line := v1.Group("/line", logger.New())
	line.Get("/", protected, h.Lines.GetLines)
	line.Get("/summary", protected, h.Lines.GetLineSummary)
	line.Get("/:code", protected, h.Lines.GetLineByCode)
	line.Post("/", protected, adminOnly, validate.SaveLine(), h.Lines.CreateLine)
	line.Put("/:code", protected, adminOnly, validate.SaveLine(), h.Lines.UpdateLine)
	line.Patch("/:code/status", protected, adminOnly, validate.LineStatus(), h.Lines.LineStatus)
	line.Post("/segment-candidates", protected, validate.SegmentCandidates(), h.Lines.SegmentCandidates)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/", protected, h.Tickets.GetTickets)
	ticket.Get("/summary", protected, h.Tickets.GetTicketSummary)
	ticket.Get("/:number", protected, h.Tickets.GetTicketByNumber)
	ticket.Get("/:ticketId/validations", protected, h.Tickets.GetTicketValidations)
	ticket.Get("/:number/qr", protected, h.Tickets.GetTicketQR)

	voucher := v1.Group("/voucher", logger.New())
	voucher.Get("/", protected, h.Vouchers.GetVouchers)
	voucher.Get("/summary", protected, h.Vouchers.GetVoucherSummary)
	voucher.Get("/:voucherId", protected, h.Vouchers.GetVoucherById)
	voucher.Post("/", protected, adminOnly, validate.CreateVoucher(), h.Vouchers.CreateVoucher)
	voucher.Put("/:voucherId", protected, adminOnly, validate.UpdateVoucher(), h.Vouchers.UpdateVoucher)
	voucher.Patch("/:voucherId/revoke", protected, adminOnly, h.Vouchers.RevokeVoucher)

	pkg := v1.Group("/discount-package", logger.New())
	pkg.Get("/", protected, h.Discounts.GetPackages)
	pkg.Get("/:packageId", protected, h.Discounts.GetPackageById)
	pkg.Post("/", protected, adminOnly, validate.SaveDiscountPackage(), h.Discounts.CreatePackage)
	pkg.Put("/:packageId", protected, adminOnly, validate.SaveDiscountPackage(), h.Discounts.UpdatePackage)
	pkg.Patch("/:packageId/terminate", protected, adminOnly, h.Discounts.TerminatePackage)

	assignment := v1.Group("/account-discount-package", logger.New())
	assignment.Get("/", protected, h.Discounts.GetAssignments)
	assignment.Post("/", protected, adminOnly, validate.AssignPackage(), h.Discounts.AssignPackage)
	assignment.Delete("/:assignmentId", protected, adminOnly, h.Discounts.UnassignPackage)

	order := v1.Group("/order", logger.New())
	order.Get("/", protected, h.Orders.GetOrders)
	order.Get("/summary", protected, h.Orders.GetOrderSummary)
	order.Get("/:orderId", protected, h.Orders.GetOrderById)
	order.Post("/checkout", protected, validate.Checkout(), h.Orders.Checkout)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", protected, h.Stats.GetAdminStats)

	meta := v1.Group("/meta", logger.New())
	meta.Get("/statuses", protected, handler.GetStatusMeta)

	v1.Get("/dashboard/ws", protected, websocket.New(h.Dashboard.Serve))
}
