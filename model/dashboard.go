package model

import "time"

// DashboardStats is the aggregated snapshot pushed to the admin dashboard.
type DashboardStats struct {
	Accounts AccountSummary `json:"accounts"`
	Stations StationSummary `json:"stations"`
	Lines    LineSummary    `json:"lines"`
	Tickets  TicketSummary  `json:"tickets"`
	Vouchers VoucherSummary `json:"vouchers"`
	Orders   OrderSummary   `json:"orders"`

	GeneratedAt time.Time `json:"generatedAt"`
}
